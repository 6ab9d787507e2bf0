// Package writers renders season results into spreadsheet workbooks.
package writers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
	"github.com/Black-And-White-Club/golf-league/app/modules/season/infrastructure/parsers"
)

// SeasonSheet is the name of the standings sheet.
const SeasonSheet = "Season"

const missing = "-"

var eventHeader = []string{
	"Player", "Course Handicap", "Front", "Back", "Gross", "Net", "Differential",
	"Birdies", "Eagles", "Albatrosses",
	"Gross Points", "Net Points", "Event Points",
	"Gross Rank", "Net Rank", "Event Rank",
}

var seasonHeader = []string{
	"Rank", "Player", "Points", "Birdies", "Eagles", "Albatrosses", "Events Completed",
	"Net Wins", "Net Top 5", "Net Top 10", "Event Wins", "Event Top 5", "Event Top 10",
	"Season Handicap",
}

// XLSXWriter writes a results workbook: the season standings first, then
// one sheet per event.
type XLSXWriter struct{}

// NewXLSXWriter creates a new results writer
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// Write renders results to w.
func (x *XLSXWriter) Write(w io.Writer, results seasondomain.SeasonModelResults) error {
	f, err := x.build(results)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile renders results to the file at path.
func (x *XLSXWriter) WriteFile(path string, results seasondomain.SeasonModelResults) error {
	f, err := x.build(results)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func (x *XLSXWriter) build(results seasondomain.SeasonModelResults) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E7DD"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetName(f.GetSheetName(0), SeasonSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, SeasonSheet, seasonHeader, seasonRows(results.Standings()), headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	for _, n := range results.EventNumbers() {
		sheet := parsers.EventSheetName(n)
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, eventHeader, eventRows(results.Events[n]), headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}, headerStyle int) error {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return fmt.Errorf("sheet %q header: %w", sheet, err)
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("sheet %q header style: %w", sheet, err)
	}

	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("sheet %q row %d: %w", sheet, i+2, err)
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func rankCell(r leaderboarddomain.Rank) interface{} {
	if p, err := r.Position(); err == nil {
		return p
	}
	return missing
}

func eventRows(results []leaderboarddomain.EventPlayerResult) [][]interface{} {
	rows := make([][]interface{}, len(results))
	for i, r := range results {
		row := []interface{}{r.Player}
		if c, ok := r.Individual.(scoredomain.CompleteIndividualResult); ok {
			row = append(row, c.CourseHandicap, c.FrontGross, c.BackGross, c.TotalGross, c.TotalNet, c.ScoreDifferential)
		} else {
			row = append(row, missing, missing, missing, missing, missing, missing)
		}
		row = append(row,
			scoredomain.BirdieCount(r.Individual),
			scoredomain.EagleCount(r.Individual),
			scoredomain.AlbatrossCount(r.Individual),
			r.Aggregate.GrossPoints,
			r.Aggregate.NetPoints,
			r.Aggregate.EventPoints,
			rankCell(r.Aggregate.GrossRank),
			rankCell(r.Aggregate.NetRank),
			rankCell(r.Aggregate.EventRank),
		)
		rows[i] = row
	}
	return rows
}

func seasonRows(standings []leaderboarddomain.SeasonOverallResult) [][]interface{} {
	rows := make([][]interface{}, len(standings))
	for i, s := range standings {
		rows[i] = []interface{}{
			rankCell(s.Rank), s.Player, s.Points,
			s.Birdies, s.Eagles, s.Albatrosses, s.EventsCompleted,
			s.NetStrokeWins, s.NetStrokeTopFives, s.NetStrokeTopTens,
			s.EventWins, s.EventTopFives, s.EventTopTens,
			s.SeasonHandicap,
		}
	}
	return rows
}
