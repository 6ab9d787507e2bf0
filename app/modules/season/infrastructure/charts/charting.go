// Package charts renders season standings as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
)

// Palette holds the colors used by every chart.
type Palette struct {
	Background  drawing.Color
	TextColor   drawing.Color
	PrimaryBar  drawing.Color
	AccentBar   drawing.Color
	PrimaryLine drawing.Color
}

// DefaultPalette is a dark green theme with a gold accent for the leader.
var DefaultPalette = Palette{
	Background:  drawing.ColorFromHex("1b2a22"),
	TextColor:   drawing.ColorFromHex("e8e4d8"),
	PrimaryBar:  drawing.ColorFromHex("3f7d58"),
	AccentBar:   drawing.ColorFromHex("d4a017"),
	PrimaryLine: drawing.ColorFromHex("6fbf8f"),
}

// SeasonPointsChart produces a PNG bar chart of season points ordered by
// season rank. Leaders are drawn in the accent color.
func SeasonPointsChart(standings []leaderboarddomain.SeasonOverallResult, palette Palette) ([]byte, error) {
	if len(standings) == 0 {
		return renderNoDataPlaceholder(palette, "No season results yet")
	}

	maxPoints := 0.0
	for _, s := range standings {
		maxPoints = max(maxPoints, s.Points)
	}

	bars := make([]chart.Value, len(standings))
	for i, s := range standings {
		color := palette.PrimaryBar
		if win, err := s.Rank.IsWin(); err == nil && win {
			color = palette.AccentBar
		}
		bars[i] = chart.Value{
			Label: barLabel(s),
			Value: s.Points,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title:    "Season Points",
		Width:    max(400, 80*len(bars)),
		Height:   400,
		BarWidth: 40,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: max(maxPoints, 1) * 1.1,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render season points chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// CumulativePointsChart produces a PNG line chart of one player's running
// points total after each event.
func CumulativePointsChart(player string, eventNumbers []int, events map[int][]leaderboarddomain.EventPlayerResult, palette Palette) ([]byte, error) {
	var xs, ys []float64
	total := 0.0
	for _, n := range eventNumbers {
		for _, r := range events[n] {
			if r.Player != player {
				continue
			}
			total += r.Aggregate.EventPoints
			xs = append(xs, float64(n))
			ys = append(ys, total)
		}
	}
	if len(xs) == 0 {
		return renderNoDataPlaceholder(palette, "No events found for "+player)
	}
	if len(xs) == 1 {
		// a line needs two points
		xs = append([]float64{xs[0] - 1}, xs...)
		ys = append([]float64{0}, ys...)
	}

	series := chart.ContinuousSeries{
		Name:    player,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: palette.PrimaryLine,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    palette.AccentBar,
		},
	}

	graph := chart.Chart{
		Title:  player,
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		XAxis: chart.XAxis{
			Name: "Event",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.Itoa(int(f))
				}
				return ""
			},
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		YAxis: chart.YAxis{
			Name: "Points",
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		Series: []chart.Series{series},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render points chart for %s: %w", player, err)
	}
	return buffer.Bytes(), nil
}

func barLabel(s leaderboarddomain.SeasonOverallResult) string {
	if p, err := s.Rank.Position(); err == nil {
		return strconv.Itoa(p) + ". " + s.Player
	}
	return s.Player
}

// renderNoDataPlaceholder paints msg centered on a blank canvas. It draws on
// the renderer directly since a chart without series does not render.
func renderNoDataPlaceholder(palette Palette, msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("create placeholder canvas: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load placeholder font: %w", err)
	}
	r.SetDPI(chart.DefaultDPI)

	r.SetFillColor(palette.Background)
	r.SetStrokeColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.FillStroke()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, fmt.Errorf("render placeholder: %w", err)
	}
	return buffer.Bytes(), nil
}
