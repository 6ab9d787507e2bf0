package scoredomain

import (
	"testing"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteScorecard(t *testing.T) {
	full := func() map[int]int {
		m := make(map[int]int, 18)
		for h := 1; h <= 18; h++ {
			m[h] = 4
		}
		return m
	}

	tests := []struct {
		name    string
		mutate  func(map[int]int)
		wantErr bool
	}{
		{name: "all holes present", mutate: func(map[int]int) {}},
		{name: "missing hole", mutate: func(m map[int]int) { delete(m, 7) }, wantErr: true},
		{name: "hole out of range", mutate: func(m map[int]int) { delete(m, 18); m[19] = 4 }, wantErr: true},
		{name: "zero strokes", mutate: func(m map[int]int) { m[3] = 0 }, wantErr: true},
		{name: "negative strokes", mutate: func(m map[int]int) { m[3] = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := full()
			tt.mutate(m)
			_, err := NewCompleteScorecard(m)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidScorecard)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestScorecardTotals(t *testing.T) {
	card := mustCard(t, 5, 7, 6, 3, 5, 6, 3, 5, 6, 7, 6, 4, 3, 5, 3, 4, 5, 6)
	require.Equal(t, 46, card.Front())
	require.Equal(t, 43, card.Back())
	require.Equal(t, 89, card.Total())

	s, err := card.Strokes(2)
	require.NoError(t, err)
	require.Equal(t, 7, s)

	_, err = card.Strokes(19)
	require.ErrorIs(t, err, coursedomain.ErrInvalidHole)

	_, err = ScorecardFromStrokes(4, 4, 4)
	require.ErrorIs(t, err, ErrInvalidScorecard)
}
