package parsers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	handicapdomain "github.com/Black-And-White-Club/golf-league/app/modules/handicap/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrNoEvents        = errors.New("no event sheets found")
	ErrMissingColumn   = errors.New("missing column")
	ErrInvalidRow      = errors.New("invalid row")
)

// layout maps the header row of an event sheet to column indices.
type layout struct {
	player int
	gender int
	index  int
	holes  [coursedomain.HoleCount]int
}

type playerRow struct {
	player seasondomain.Player
	input  seasondomain.PlayerEventInput
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// findColumn searches for a column by multiple possible names (case-insensitive)
func findColumn(header []string, possibleNames ...string) int {
	for i, col := range header {
		colNorm := normalize(col)
		for _, name := range possibleNames {
			if colNorm == normalize(name) {
				return i
			}
		}
	}
	return -1
}

// holeNumber matches "1", "hole1", "hole 1", "h1".
func holeNumber(col string) (int, bool) {
	c := normalize(col)
	switch {
	case strings.HasPrefix(c, "hole"):
		c = strings.TrimPrefix(c, "hole")
	case strings.HasPrefix(c, "h"):
		c = strings.TrimPrefix(c, "h")
	}
	n, err := strconv.Atoi(c)
	if err != nil || n < 1 || n > coursedomain.HoleCount {
		return 0, false
	}
	return n, true
}

func parseHeader(header []string) (layout, error) {
	l := layout{
		player: findColumn(header, "player", "name", "player name"),
		gender: findColumn(header, "gender", "sex"),
		index:  findColumn(header, "index", "handicap index", "hcp index", "hi"),
	}
	for i := range l.holes {
		l.holes[i] = -1
	}

	switch {
	case l.player < 0:
		return layout{}, fmt.Errorf("%w: player", ErrMissingColumn)
	case l.gender < 0:
		return layout{}, fmt.Errorf("%w: gender", ErrMissingColumn)
	case l.index < 0:
		return layout{}, fmt.Errorf("%w: index", ErrMissingColumn)
	}

	for i, col := range header {
		if i == l.player || i == l.gender || i == l.index {
			continue
		}
		if hole, ok := holeNumber(col); ok && l.holes[hole-1] < 0 {
			l.holes[hole-1] = i
		}
	}
	for i, col := range l.holes {
		if col < 0 {
			return layout{}, fmt.Errorf("%w: hole %d", ErrMissingColumn, i+1)
		}
	}
	return l, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseEventRows reads a header row followed by one row per player. An
// empty or "-" stroke anywhere makes that player's card incomplete.
func parseEventRows(rows [][]string) ([]playerRow, error) {
	start := 0
	for start < len(rows) && isBlank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, fmt.Errorf("%w: no header row", ErrMissingColumn)
	}

	l, err := parseHeader(rows[start])
	if err != nil {
		return nil, err
	}

	var players []playerRow
	for i := start + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		line := i + 1

		name := cell(row, l.player)
		if name == "" {
			return nil, fmt.Errorf("%w: line %d has no player", ErrInvalidRow, line)
		}
		gender, err := coursedomain.ParseGender(cell(row, l.gender))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidRow, line, err)
		}
		index, err := strconv.ParseFloat(cell(row, l.index), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: index %q", ErrInvalidRow, line, cell(row, l.index))
		}
		if err := handicapdomain.ValidateIndex(index); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidRow, line, err)
		}

		card, err := parseStrokes(row, l)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d (%s): %w", ErrInvalidRow, line, name, err)
		}

		players = append(players, playerRow{
			player: seasondomain.Player{Name: name, Gender: gender},
			input:  seasondomain.PlayerEventInput{HandicapIndex: index, Scorecard: card},
		})
	}
	return players, nil
}

func parseStrokes(row []string, l layout) (scoredomain.Scorecard, error) {
	strokes := make(map[int]int, coursedomain.HoleCount)
	for i, col := range l.holes {
		v := cell(row, col)
		if v == "" || v == "-" {
			return scoredomain.IncompleteScorecard{}, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("hole %d: non-numeric strokes %q", i+1, v)
		}
		strokes[i+1] = n
	}

	card, err := scoredomain.NewCompleteScorecard(strokes)
	if err != nil {
		return nil, err
	}
	return card, nil
}

// assemble merges per-event rows into a validated season input. Players are
// ordered by first appearance; a player's gender must agree across events.
func assemble(events map[int][]playerRow, order []int) (seasondomain.SeasonModelInput, error) {
	var players []seasondomain.Player
	genders := make(map[string]coursedomain.Gender)
	inputs := make([]seasondomain.EventInput, 0, len(order))

	for _, n := range order {
		e := seasondomain.EventInput{Number: n, Players: make(map[string]seasondomain.PlayerEventInput, len(events[n]))}
		for _, r := range events[n] {
			if g, seen := genders[r.player.Name]; !seen {
				genders[r.player.Name] = r.player.Gender
				players = append(players, r.player)
			} else if g != r.player.Gender {
				return seasondomain.SeasonModelInput{}, fmt.Errorf("%w: event %d: %q listed as %s, was %s",
					ErrInvalidRow, n, r.player.Name, r.player.Gender, g)
			}
			if _, dup := e.Players[r.player.Name]; dup {
				return seasondomain.SeasonModelInput{}, fmt.Errorf("%w: event %d lists %q twice",
					seasondomain.ErrDuplicatePlayer, n, r.player.Name)
			}
			e.Players[r.player.Name] = r.input
		}
		inputs = append(inputs, e)
	}

	return seasondomain.NewSeasonModelInput(players, inputs)
}
