package scoredomain

import (
	"fmt"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
)

// MaxStrokes is the most a player may post on a hole: double par plus two.
func MaxStrokes(par int) int {
	return 2*par + 2
}

// AdjustScorecard caps each hole at MaxStrokes and records capped holes as
// HoleOverMax on the tracker.
func AdjustScorecard(card CompleteScorecard, course coursedomain.Course, tracker *NotableHoleTracker) (CompleteScorecard, error) {
	var adjusted CompleteScorecard
	for hole := 1; hole <= coursedomain.HoleCount; hole++ {
		par := course.HolePars[hole-1]
		strokes := card.strokes[hole-1]

		if limit := MaxStrokes(par); strokes > limit {
			if err := tracker.Set(hole, HoleOverMax); err != nil {
				return CompleteScorecard{}, fmt.Errorf("adjust hole %d: %w", hole, err)
			}
			strokes = limit
		}
		adjusted.strokes[hole-1] = strokes
	}
	return adjusted, nil
}

// ClassifyHoles marks birdies, eagles and albatrosses on an adjusted scorecard.
func ClassifyHoles(adjusted CompleteScorecard, course coursedomain.Course, tracker *NotableHoleTracker) error {
	for hole := 1; hole <= coursedomain.HoleCount; hole++ {
		kind := classify(course.HolePars[hole-1] - adjusted.strokes[hole-1])
		if kind == HoleNone {
			continue
		}
		if err := tracker.Set(hole, kind); err != nil {
			return fmt.Errorf("classify hole %d: %w", hole, err)
		}
	}
	return nil
}

func classify(strokesBelowPar int) HoleKind {
	switch strokesBelowPar {
	case 1:
		return HoleBirdie
	case 2:
		return HoleEagle
	case 3:
		return HoleAlbatross
	default:
		return HoleNone
	}
}
