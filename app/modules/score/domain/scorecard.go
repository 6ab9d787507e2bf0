package scoredomain

import (
	"fmt"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
)

// Scorecard is either a CompleteScorecard or IncompleteScorecard.
// Only a CompleteScorecard exposes strokes; use a type switch to reach them.
type Scorecard interface {
	isScorecard()
}

// CompleteScorecard holds a positive stroke count for every hole.
type CompleteScorecard struct {
	strokes [coursedomain.HoleCount]int
}

// IncompleteScorecard marks a player who did not post all 18 holes.
type IncompleteScorecard struct{}

func (CompleteScorecard) isScorecard()   {}
func (IncompleteScorecard) isScorecard() {}

// NewCompleteScorecard builds a scorecard from a hole number → strokes map.
// Every hole 1-18 must be present with a positive stroke count.
func NewCompleteScorecard(strokes map[int]int) (CompleteScorecard, error) {
	if len(strokes) != coursedomain.HoleCount {
		return CompleteScorecard{}, fmt.Errorf("%w: %d holes, want %d", ErrInvalidScorecard, len(strokes), coursedomain.HoleCount)
	}

	var card CompleteScorecard
	for hole, n := range strokes {
		if err := coursedomain.ValidateHole(hole); err != nil {
			return CompleteScorecard{}, fmt.Errorf("%w: %w", ErrInvalidScorecard, err)
		}
		if n <= 0 {
			return CompleteScorecard{}, fmt.Errorf("%w: hole %d has %d strokes", ErrInvalidScorecard, hole, n)
		}
		card.strokes[hole-1] = n
	}
	return card, nil
}

// ScorecardFromStrokes builds a scorecard from strokes listed in hole order.
func ScorecardFromStrokes(strokes ...int) (CompleteScorecard, error) {
	if len(strokes) != coursedomain.HoleCount {
		return CompleteScorecard{}, fmt.Errorf("%w: %d holes, want %d", ErrInvalidScorecard, len(strokes), coursedomain.HoleCount)
	}
	byHole := make(map[int]int, len(strokes))
	for i, n := range strokes {
		byHole[i+1] = n
	}
	return NewCompleteScorecard(byHole)
}

// Strokes returns the strokes for a 1-based hole number.
func (c CompleteScorecard) Strokes(hole int) (int, error) {
	if err := coursedomain.ValidateHole(hole); err != nil {
		return 0, err
	}
	return c.strokes[hole-1], nil
}

// Holes returns a copy of the strokes in hole order.
func (c CompleteScorecard) Holes() [coursedomain.HoleCount]int {
	return c.strokes
}

// Front is the stroke total for holes 1-9.
func (c CompleteScorecard) Front() int {
	return sum(c.strokes[:9])
}

// Back is the stroke total for holes 10-18.
func (c CompleteScorecard) Back() int {
	return sum(c.strokes[9:])
}

// Total is the stroke total for all 18 holes.
func (c CompleteScorecard) Total() int {
	return c.Front() + c.Back()
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
