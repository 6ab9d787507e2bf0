package scoredomain

import (
	"testing"

	"github.com/stretchr/testify/require"

	handicapdomain "github.com/Black-And-White-Club/golf-league/app/modules/handicap/domain"
)

func TestGenerateBestBallResult(t *testing.T) {
	course := testCourse(t, par72)
	tee := testTee(t, course)

	a := append([]int{}, par72...)
	b := append([]int{}, par72...)
	// best ball: birdie on 1 from a, par on 2 from b, birdie on 18 from b
	a[0], b[0] = 3, 5
	a[1], b[1] = 9, 4
	b[17] = 4

	got, err := GenerateBestBallResult([]BestBallMember{
		{HandicapIndex: 10.0, Scorecard: mustCard(t, a...), Tee: tee},
		{HandicapIndex: 20.0, Scorecard: mustCard(t, b...), Tee: tee},
	}, course, BestBallAllowance)
	require.NoError(t, err)

	result, ok := got.(CompleteTeamResult)
	require.True(t, ok)
	require.Equal(t, FormatBestBall, result.Format)
	require.Equal(t, 72-2, result.TotalGross)
	require.Equal(t, 2, result.NotableHoles.Birdies())

	// lower partner: round((10*129/113 + 69.5-72) * 0.85) = round(7.58) = 8
	require.Equal(t, 8, result.PlayingHandicap)
	require.Equal(t, result.TotalGross-8, result.TotalNet)
}

func TestGenerateBestBallResultIncompleteMember(t *testing.T) {
	course := testCourse(t, par72)
	tee := testTee(t, course)

	got, err := GenerateBestBallResult([]BestBallMember{
		{HandicapIndex: 10.0, Scorecard: parCard(t, par72), Tee: tee},
		{HandicapIndex: 20.0, Scorecard: IncompleteScorecard{}, Tee: tee},
	}, course, BestBallAllowance)
	require.NoError(t, err)
	require.Equal(t, IncompleteTeamResult{}, got)
}

func TestGenerateBestBallResultErrors(t *testing.T) {
	course := testCourse(t, par72)
	tee := testTee(t, course)

	_, err := GenerateBestBallResult([]BestBallMember{{Scorecard: parCard(t, par72), Tee: tee}}, course, BestBallAllowance)
	require.ErrorIs(t, err, ErrTeamSize)
}

func TestGenerateScrambleResult(t *testing.T) {
	course := testCourse(t, par72)
	tee := testTee(t, course)

	got, err := GenerateScrambleResult(ScrambleInput{
		Indices:         [2]float64{20.0, 5.0},
		Scorecard:       parCard(t, par72),
		Course:          course,
		Tee:             tee,
		LowerAllowance:  ScrambleLowerAllowance,
		HigherAllowance: ScrambleHigherAllowance,
	})
	require.NoError(t, err)

	result := got.(CompleteTeamResult)
	require.Equal(t, FormatScramble, result.Format)
	require.Equal(t, 72, result.TotalGross)
	// lower: round((5*129/113 - 2.5) * 0.35) = round(1.12) = 1
	// higher: round((20*129/113 - 2.5) * 0.15) = round(3.05) = 3
	require.Equal(t, 4, result.PlayingHandicap)
	require.Equal(t, 68, result.TotalNet)

	incomplete, err := GenerateScrambleResult(ScrambleInput{Scorecard: IncompleteScorecard{}, Course: course, Tee: tee})
	require.NoError(t, err)
	require.Equal(t, IncompleteTeamResult{}, incomplete)
}

func TestParseTeamFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    TeamFormat
		wantErr bool
	}{
		{in: "BEST_BALL", want: FormatBestBall},
		{in: "best ball", want: FormatBestBall},
		{in: "best-ball", want: FormatBestBall},
		{in: " scramble ", want: FormatScramble},
		{in: "shamble", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTeamFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownTeamFormat)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTeamResultsRejectInvalidIndex(t *testing.T) {
	course := testCourse(t, par72)
	tee := testTee(t, course)

	_, err := GenerateBestBallResult([]BestBallMember{
		{HandicapIndex: 10.0, Scorecard: parCard(t, par72), Tee: tee},
		{HandicapIndex: 99.0, Scorecard: parCard(t, par72), Tee: tee},
	}, course, BestBallAllowance)
	require.ErrorIs(t, err, handicapdomain.ErrInvalidIndex)

	_, err = GenerateScrambleResult(ScrambleInput{
		Indices:   [2]float64{5.0, 99.0},
		Scorecard: parCard(t, par72),
		Course:    course,
		Tee:       tee,
	})
	require.ErrorIs(t, err, handicapdomain.ErrInvalidIndex)
}
