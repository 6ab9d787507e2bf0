package coursedb

import (
	"testing"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	"github.com/stretchr/testify/require"
)

const testCourses = `
courses:
  - name: Pine Valley
    pars: [4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 4, 5, 3, 4, 4, 5]
    tees:
      male:
        - name: White
          rating: 69.5
          slope: 129
          front: {rating: 34.6, slope: 127}
          back: {rating: 34.9, slope: 131}
      female:
        - name: Red
          rating: 71.0
          slope: 124
  - name: Cedar Ridge
    pars: [4, 3, 4, 4, 5, 3, 4, 4, 4, 4, 3, 4, 4, 5, 3, 4, 4, 4]
    tees:
      m:
        - name: Blue
          rating: 68.1
          slope: 118
`

func TestLoadYAML(t *testing.T) {
	catalog, err := LoadYAML([]byte(testCourses))
	require.NoError(t, err)
	require.Equal(t, []string{"Cedar Ridge", "Pine Valley"}, catalog.Names())

	course, err := catalog.GetCourse("Pine Valley")
	require.NoError(t, err)
	require.Equal(t, 72, course.Par())

	tee, err := course.Tee(coursedomain.GenderMale, "White")
	require.NoError(t, err)
	require.Equal(t, 129, tee.Slope)
	require.Equal(t, 34.9, tee.BackRating)

	cedar, err := catalog.GetCourse("Cedar Ridge")
	require.NoError(t, err)
	require.Equal(t, 70, cedar.Par())
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "duplicate course",
			doc: `
courses:
  - name: A
    pars: [4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 4, 5, 3, 4, 4, 5]
  - name: A
    pars: [4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 4, 5, 3, 4, 4, 5]
`,
			wantErr: ErrDuplicateCourse,
		},
		{
			name: "short course",
			doc: `
courses:
  - name: A
    pars: [4, 4, 3]
`,
			wantErr: coursedomain.ErrInvalidCourse,
		},
		{
			name: "unknown gender key",
			doc: `
courses:
  - name: A
    pars: [4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 4, 5, 3, 4, 4, 5]
    tees:
      junior:
        - {name: Gold, rating: 65.0, slope: 110}
`,
			wantErr: coursedomain.ErrUnknownGender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML([]byte(tt.doc))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogGetCourseNotFound(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	_, err = catalog.GetCourse("Nowhere")
	require.ErrorIs(t, err, ErrCourseNotFound)
}
