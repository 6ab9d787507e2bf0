package handicapdomain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeasonHandicap(t *testing.T) {
	tests := []struct {
		name  string
		diffs []float64
		rule  SeasonRule
		want  float64
	}{
		{name: "no rounds", diffs: nil, want: 0},
		{name: "one round takes a full stroke penalty", diffs: []float64{12.3}, want: 11.3},
		{name: "two rounds take a half stroke penalty", diffs: []float64{14.0, 12.3}, want: 11.8},
		{name: "three rounds uses lowest", diffs: []float64{15.0, 12.3, 13.0}, want: 12.3},
		{name: "four rounds averages lowest two", diffs: []float64{10.1, 12.3, 9.9, 20.0}, want: 10.0},
		{name: "five rounds averages lowest two", diffs: []float64{10.1, 12.3, 9.9, 20.0, 11.0}, want: 10.0},
		{name: "six rounds averages lowest three", diffs: []float64{5, 3, 8, 4, 9, 6}, want: 4.0},
		{name: "average rounded to a tenth", diffs: []float64{10.1, 10.2, 10.4, 15, 16, 17}, want: 10.2},
		{name: "seven rounds legacy", diffs: []float64{5, 3, 8, 4, 9, 6, 7}, rule: RuleLegacy, want: 0},
		{name: "seven rounds lowest three", diffs: []float64{5, 3, 8, 4, 9, 6, 7}, rule: RuleLowestThree, want: 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, SeasonHandicap(tt.diffs, tt.rule), 1e-9)
		})
	}
}

func TestSeasonHandicapDoesNotReorderInput(t *testing.T) {
	diffs := []float64{9, 3, 7}
	SeasonHandicap(diffs, RuleLegacy)
	require.Equal(t, []float64{9, 3, 7}, diffs)
}

func TestParseSeasonRule(t *testing.T) {
	rule, err := ParseSeasonRule("")
	require.NoError(t, err)
	require.Equal(t, RuleLegacy, rule)

	rule, err = ParseSeasonRule("LOWEST_THREE")
	require.NoError(t, err)
	require.Equal(t, RuleLowestThree, rule)

	_, err = ParseSeasonRule("best_of_eight")
	require.ErrorIs(t, err, ErrUnknownRule)
}
