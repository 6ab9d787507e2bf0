package scoredomain

import (
	"testing"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	"github.com/stretchr/testify/require"
)

var (
	par70 = []int{4, 5, 4, 3, 4, 4, 3, 4, 4, 5, 4, 4, 3, 4, 3, 4, 4, 4}
	par72 = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 4, 5, 3, 4, 4, 5}
)

func testCourse(t *testing.T, pars []int) coursedomain.Course {
	t.Helper()
	c, err := coursedomain.NewCourse("Test Links", pars, map[coursedomain.Gender][]coursedomain.Tee{
		coursedomain.GenderMale:   {{Name: "White", Rating: 69.5, Slope: 129}},
		coursedomain.GenderFemale: {{Name: "Red", Rating: 71.0, Slope: 124}},
	})
	require.NoError(t, err)
	return c
}

func testTee(t *testing.T, c coursedomain.Course) coursedomain.Tee {
	t.Helper()
	tee, err := c.Tee(coursedomain.GenderMale, "White")
	require.NoError(t, err)
	return tee
}

func mustCard(t *testing.T, strokes ...int) CompleteScorecard {
	t.Helper()
	card, err := ScorecardFromStrokes(strokes...)
	require.NoError(t, err)
	return card
}

func parCard(t *testing.T, pars []int) CompleteScorecard {
	t.Helper()
	return mustCard(t, pars...)
}
