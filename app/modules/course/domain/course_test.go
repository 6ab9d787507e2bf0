package coursedomain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var testPars = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 4, 5, 3, 4, 4, 5}

func TestNewCourse(t *testing.T) {
	tests := []struct {
		name    string
		pars    []int
		tees    map[Gender][]Tee
		wantErr error
	}{
		{
			name: "valid course",
			pars: testPars,
			tees: map[Gender][]Tee{
				GenderMale:   {{Name: "White", Rating: 69.5, Slope: 129}},
				GenderFemale: {{Name: "Red", Rating: 71.2, Slope: 125}},
			},
		},
		{
			name:    "seventeen holes",
			pars:    testPars[:17],
			wantErr: ErrInvalidCourse,
		},
		{
			name:    "par six hole",
			pars:    append(append([]int{}, testPars[:17]...), 6),
			wantErr: ErrInvalidCourse,
		},
		{
			name:    "slope too high",
			pars:    testPars,
			tees:    map[Gender][]Tee{GenderMale: {{Name: "Blue", Rating: 72.0, Slope: 156}}},
			wantErr: ErrInvalidCourse,
		},
		{
			name:    "rating too low",
			pars:    testPars,
			tees:    map[Gender][]Tee{GenderMale: {{Name: "Blue", Rating: 59.9, Slope: 120}}},
			wantErr: ErrInvalidCourse,
		},
		{
			name: "duplicate tee",
			pars: testPars,
			tees: map[Gender][]Tee{GenderMale: {
				{Name: "Blue", Rating: 72.0, Slope: 130},
				{Name: "Blue", Rating: 71.0, Slope: 128},
			}},
			wantErr: ErrInvalidCourse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCourse("Pine Valley", tt.pars, tt.tees)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCoursePars(t *testing.T) {
	c, err := NewCourse("Pine Valley", testPars, nil)
	require.NoError(t, err)

	require.Equal(t, 36, c.FrontPar())
	require.Equal(t, 36, c.BackPar())
	require.Equal(t, 72, c.Par())

	p, err := c.HolePar(4)
	require.NoError(t, err)
	require.Equal(t, 5, p)

	_, err = c.HolePar(0)
	require.ErrorIs(t, err, ErrInvalidHole)
	_, err = c.HolePar(19)
	require.ErrorIs(t, err, ErrInvalidHole)
}

func TestCourseTee(t *testing.T) {
	c, err := NewCourse("Pine Valley", testPars, map[Gender][]Tee{
		GenderMale: {{Name: "White", Rating: 69.5, Slope: 129, FrontRating: 34.8, FrontSlope: 127}},
	})
	require.NoError(t, err)

	tee, err := c.Tee(GenderMale, "White")
	require.NoError(t, err)
	require.Equal(t, 129, tee.Slope)

	_, err = c.Tee(GenderMale, "Gold")
	require.True(t, errors.Is(err, ErrTeeNotFound))

	_, err = c.Tee(GenderFemale, "White")
	require.ErrorIs(t, err, ErrTeeNotFound)

	rating, slope, err := tee.FrontNine()
	require.NoError(t, err)
	require.Equal(t, 34.8, rating)
	require.Equal(t, 127, slope)

	_, _, err = tee.BackNine()
	require.ErrorIs(t, err, ErrNineHoleNotSet)
}

func TestParseGender(t *testing.T) {
	for in, want := range map[string]Gender{"male": GenderMale, "F": GenderFemale, " Female ": GenderFemale, "M": GenderMale} {
		got, err := ParseGender(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseGender("x")
	require.ErrorIs(t, err, ErrUnknownGender)
}

func TestValidateSlope(t *testing.T) {
	for _, slope := range []int{MinSlope, 113, MaxSlope} {
		require.NoError(t, ValidateSlope(slope))
	}
	for _, slope := range []int{0, MinSlope - 1, MaxSlope + 1} {
		require.ErrorIs(t, ValidateSlope(slope), ErrInvalidCourse)
	}
}
