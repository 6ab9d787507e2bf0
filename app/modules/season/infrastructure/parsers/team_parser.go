package parsers

import (
	"fmt"
	"slices"

	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
)

// TeamCSVParser parses a team round CSV: a Team column plus the player,
// gender, index and hole columns of an event sheet, one row per member.
// Scramble partners may both carry the team card or leave the second blank.
type TeamCSVParser struct {
	format     scoredomain.TeamFormat
	allowances seasondomain.TeamAllowances
}

// NewTeamCSVParser creates a team parser for format.
func NewTeamCSVParser(format scoredomain.TeamFormat, allowances seasondomain.TeamAllowances) *TeamCSVParser {
	return &TeamCSVParser{format: format, allowances: allowances}
}

// Parse groups member rows into teams in order of first appearance.
func (p *TeamCSVParser) Parse(data []byte) (seasondomain.TeamRoundInput, error) {
	records, err := readCSV(data)
	if err != nil {
		return seasondomain.TeamRoundInput{}, err
	}

	start := 0
	for start < len(records) && isBlank(records[start]) {
		start++
	}
	if start == len(records) {
		return seasondomain.TeamRoundInput{}, fmt.Errorf("%w: no header row", ErrMissingColumn)
	}
	teamCol := findColumn(records[start], "team", "team name")
	if teamCol < 0 {
		return seasondomain.TeamRoundInput{}, fmt.Errorf("%w: team", ErrMissingColumn)
	}

	// strip the team column so the remaining layout matches an event sheet
	stripped := make([][]string, len(records))
	var teamNames []string
	for i, record := range records {
		row := record
		if teamCol < len(record) {
			row = slices.Delete(slices.Clone(record), teamCol, teamCol+1)
		}
		stripped[i] = row
		if i > start && !isBlank(row) {
			name := cell(record, teamCol)
			if name == "" {
				return seasondomain.TeamRoundInput{}, fmt.Errorf("%w: line %d has no team", ErrInvalidRow, i+1)
			}
			teamNames = append(teamNames, name)
		}
	}

	rows, err := parseEventRows(stripped)
	if err != nil {
		return seasondomain.TeamRoundInput{}, err
	}
	if len(rows) != len(teamNames) {
		return seasondomain.TeamRoundInput{}, fmt.Errorf("%w: %d player rows for %d team cells", ErrInvalidRow, len(rows), len(teamNames))
	}

	var teams []seasondomain.TeamInput
	byName := make(map[string]int)
	for i, r := range rows {
		name := teamNames[i]
		idx, ok := byName[name]
		if !ok {
			idx = len(teams)
			byName[name] = idx
			teams = append(teams, seasondomain.TeamInput{Name: name})
		}
		teams[idx].Members = append(teams[idx].Members, seasondomain.TeamMember{
			Player:        r.player,
			HandicapIndex: r.input.HandicapIndex,
			Scorecard:     r.input.Scorecard,
		})
	}

	return seasondomain.NewTeamRoundInput(p.format, p.allowances, teams)
}
