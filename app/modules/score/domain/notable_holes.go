package scoredomain

import (
	"fmt"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
)

// HoleKind classifies a single hole on a scorecard.
type HoleKind int

const (
	HoleNone HoleKind = iota
	HoleBirdie
	HoleEagle
	HoleAlbatross
	HoleOverMax
)

func (k HoleKind) String() string {
	switch k {
	case HoleNone:
		return "NONE"
	case HoleBirdie:
		return "BIRDIE"
	case HoleEagle:
		return "EAGLE"
	case HoleAlbatross:
		return "ALBATROSS"
	case HoleOverMax:
		return "OVER_MAX"
	default:
		return fmt.Sprintf("HoleKind(%d)", int(k))
	}
}

// NotableHoleTracker is the mutable ledger filled in while a scorecard is
// adjusted and classified. Each hole can be classified once.
type NotableHoleTracker struct {
	holes [coursedomain.HoleCount]HoleKind
}

// NewNotableHoleTracker returns a ledger with every hole set to HoleNone.
func NewNotableHoleTracker() *NotableHoleTracker {
	return &NotableHoleTracker{}
}

// Set classifies a hole.
func (t *NotableHoleTracker) Set(hole int, kind HoleKind) error {
	if err := coursedomain.ValidateHole(hole); err != nil {
		return err
	}
	if kind <= HoleNone || kind > HoleOverMax {
		return fmt.Errorf("%w: %s", ErrInvalidClassification, kind)
	}
	if current := t.holes[hole-1]; current != HoleNone {
		return fmt.Errorf("%w: hole %d is %s, cannot set %s", ErrDuplicateClassification, hole, current, kind)
	}
	t.holes[hole-1] = kind
	return nil
}

// Freeze returns an immutable snapshot of the ledger.
func (t *NotableHoleTracker) Freeze() NotableHoles {
	return NotableHoles{holes: t.holes}
}

// NotableHoles is the frozen per-player, per-event hole classification.
type NotableHoles struct {
	holes [coursedomain.HoleCount]HoleKind
}

// Kind returns the classification of a 1-based hole.
func (n NotableHoles) Kind(hole int) (HoleKind, error) {
	if err := coursedomain.ValidateHole(hole); err != nil {
		return HoleNone, err
	}
	return n.holes[hole-1], nil
}

// Count returns how many holes carry kind.
func (n NotableHoles) Count(kind HoleKind) int {
	count := 0
	for _, k := range n.holes {
		if k == kind {
			count++
		}
	}
	return count
}

// HolesOf lists the hole numbers carrying kind in ascending order.
func (n NotableHoles) HolesOf(kind HoleKind) []int {
	var holes []int
	for i, k := range n.holes {
		if k == kind {
			holes = append(holes, i+1)
		}
	}
	return holes
}

func (n NotableHoles) Birdies() int     { return n.Count(HoleBirdie) }
func (n NotableHoles) Eagles() int      { return n.Count(HoleEagle) }
func (n NotableHoles) Albatrosses() int { return n.Count(HoleAlbatross) }
func (n NotableHoles) OverMax() int     { return n.Count(HoleOverMax) }
