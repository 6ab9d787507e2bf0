package leaderboarddomain

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

// Rank is a finishing position. The zero value is NoRank, carried by
// players without a complete scorecard; position-dependent methods on it
// return ErrDisallowedCall.
type Rank struct {
	position int
}

// NoRank is the rank of a result that was not placed.
var NoRank = Rank{}

// NewRank returns the rank for a 1-based position.
func NewRank(position int) (Rank, error) {
	if position < 1 {
		return NoRank, fmt.Errorf("%w: %d", ErrInvalidRank, position)
	}
	return Rank{position: position}, nil
}

func mustRank(position int) Rank {
	r, err := NewRank(position)
	if err != nil {
		panic(err)
	}
	return r
}

// IsRanked reports whether r holds a position.
func (r Rank) IsRanked() bool {
	return r.position > 0
}

// Position returns the 1-based position.
func (r Rank) Position() (int, error) {
	if !r.IsRanked() {
		return 0, fmt.Errorf("%w: Position", ErrDisallowedCall)
	}
	return r.position, nil
}

// Add offsets the rank by n places.
func (r Rank) Add(n int) (Rank, error) {
	if !r.IsRanked() {
		return NoRank, fmt.Errorf("%w: Add", ErrDisallowedCall)
	}
	return NewRank(r.position + n)
}

// Compare orders two ranks; a lower position compares as less.
func (r Rank) Compare(other Rank) (int, error) {
	if !r.IsRanked() || !other.IsRanked() {
		return 0, fmt.Errorf("%w: Compare", ErrDisallowedCall)
	}
	return cmp.Compare(r.position, other.position), nil
}

// IsWin reports a first-place finish, including ties for first.
func (r Rank) IsWin() (bool, error) {
	return r.within(1, "IsWin")
}

// IsTopFive reports a finish in positions 1-5.
func (r Rank) IsTopFive() (bool, error) {
	return r.within(5, "IsTopFive")
}

// IsTopTen reports a finish in positions 1-10.
func (r Rank) IsTopTen() (bool, error) {
	return r.within(10, "IsTopTen")
}

func (r Rank) within(n int, op string) (bool, error) {
	if !r.IsRanked() {
		return false, fmt.Errorf("%w: %s", ErrDisallowedCall, op)
	}
	return r.position <= n, nil
}

func (r Rank) String() string {
	if !r.IsRanked() {
		return "-"
	}
	return strconv.Itoa(r.position)
}

// Order selects which end of the value range ranks first.
type Order int

const (
	// Ascending ranks the lowest value first (stroke totals).
	Ascending Order = iota
	// Descending ranks the highest value first (points).
	Descending
)

type rankEntry[K comparable, V cmp.Ordered] struct {
	key   K
	value V
}

// AllocateRanks assigns competition ranks: each key ranks one place below
// the number of keys with a strictly better value, so ties share the lower
// number and the following positions are skipped.
func AllocateRanks[K comparable, V cmp.Ordered](values map[K]V, order Order) map[K]int {
	ranks := make(map[K]int, len(values))
	if len(values) == 0 {
		return ranks
	}

	entries := make([]rankEntry[K, V], 0, len(values))
	for k, v := range values {
		entries = append(entries, rankEntry[K, V]{key: k, value: v})
	}
	slices.SortFunc(entries, func(a, b rankEntry[K, V]) int {
		if order == Descending {
			return cmp.Compare(b.value, a.value)
		}
		return cmp.Compare(a.value, b.value)
	})

	rank := 1
	for i, e := range entries {
		if i > 0 && cmp.Compare(e.value, entries[i-1].value) != 0 {
			rank = i + 1
		}
		ranks[e.key] = rank
	}
	return ranks
}
