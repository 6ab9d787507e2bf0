package seasonservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	coursedb "github.com/Black-And-White-Club/golf-league/app/modules/course/infrastructure/repositories"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
	"github.com/Black-And-White-Club/golf-league/config"
)

func teamMember(name string, gender coursedomain.Gender, index float64, card scoredomain.Scorecard) seasondomain.TeamMember {
	return seasondomain.TeamMember{
		Player:        seasondomain.Player{Name: name, Gender: gender},
		HandicapIndex: index,
		Scorecard:     card,
	}
}

func teamRound(t *testing.T, format scoredomain.TeamFormat, teams ...seasondomain.TeamInput) seasondomain.TeamRoundInput {
	t.Helper()
	in, err := seasondomain.NewTeamRoundInput(format, seasondomain.DefaultTeamAllowances(), teams)
	require.NoError(t, err)
	return in
}

func TestSeasonService_ProcessTeamRoundBestBall(t *testing.T) {
	birdieOne := plusOne(par70)
	birdieOne[0] = par70[0] - 1

	in := teamRound(t, scoredomain.FormatBestBall,
		seasondomain.TeamInput{Name: "Eagles", Members: []seasondomain.TeamMember{
			teamMember("ann", coursedomain.GenderMale, 16.4, card(t, par70...)),
			teamMember("bob", coursedomain.GenderFemale, 10.0, card(t, birdieOne...)),
		}},
		seasondomain.TeamInput{Name: "Hawks", Members: []seasondomain.TeamMember{
			teamMember("cat", coursedomain.GenderMale, 5.0, card(t, par70...)),
			teamMember("dan", coursedomain.GenderMale, 20.0, scoredomain.IncompleteScorecard{}),
		}},
	)

	standings, err := newTestService(testCatalog(t), &FakePublisher{}).
		ProcessTeamRound(context.Background(), testSeasonConfig().Events[1], in)
	require.NoError(t, err)
	require.Len(t, standings, 2)

	eagles := standings[0]
	require.Equal(t, "Eagles", eagles.Team)
	result, ok := eagles.Result.(scoredomain.CompleteTeamResult)
	require.True(t, ok)
	require.Equal(t, 69, result.TotalGross)
	// bob off Red: round((10*124/113 + 1) * 0.85) = round(10.18) = 10, below ann's 15
	require.Equal(t, 10, result.PlayingHandicap)
	require.Equal(t, 59, result.TotalNet)
	require.Equal(t, 1, position(t, eagles.GrossRank))
	require.Equal(t, 1, position(t, eagles.NetRank))

	hawks := standings[1]
	require.Equal(t, scoredomain.IncompleteTeamResult{}, hawks.Result)
	require.False(t, hawks.GrossRank.IsRanked())
	require.False(t, hawks.NetRank.IsRanked())
}

func TestSeasonService_ProcessTeamRoundScramble(t *testing.T) {
	in := teamRound(t, scoredomain.FormatScramble,
		seasondomain.TeamInput{Name: "Pair", Members: []seasondomain.TeamMember{
			teamMember("ann", coursedomain.GenderMale, 20.3, card(t, par70...)),
			teamMember("bob", coursedomain.GenderMale, 8.1, scoredomain.IncompleteScorecard{}),
		}},
		seasondomain.TeamInput{Name: "Duo", Members: []seasondomain.TeamMember{
			teamMember("cat", coursedomain.GenderMale, 2.0, card(t, plusOne(par70)...)),
			teamMember("dan", coursedomain.GenderMale, 4.0, card(t, plusOne(par70)...)),
		}},
	)

	standings, err := newTestService(testCatalog(t), &FakePublisher{}).
		ProcessTeamRound(context.Background(), testSeasonConfig().Events[1], in)
	require.NoError(t, err)

	pair := standings[0].Result.(scoredomain.CompleteTeamResult)
	require.Equal(t, scoredomain.FormatScramble, pair.Format)
	require.Equal(t, 70, pair.TotalGross)
	// 8.7469*0.35 rounds to 3, 22.6743*0.15 rounds to 3
	require.Equal(t, 6, pair.PlayingHandicap)
	require.Equal(t, 1, position(t, standings[0].GrossRank))
	require.Equal(t, 2, position(t, standings[1].GrossRank))
}

func TestSeasonService_ProcessTeamRoundErrors(t *testing.T) {
	in := teamRound(t, scoredomain.FormatBestBall,
		seasondomain.TeamInput{Name: "Eagles", Members: []seasondomain.TeamMember{
			teamMember("ann", coursedomain.GenderMale, 16.4, card(t, par70...)),
			teamMember("bob", coursedomain.GenderFemale, 10.0, card(t, par70...)),
		}},
	)

	t.Run("course missing", func(t *testing.T) {
		_, err := newTestService(&FakeCourseProvider{}, nil).
			ProcessTeamRound(context.Background(), testSeasonConfig().Events[1], in)
		require.ErrorIs(t, err, coursedb.ErrCourseNotFound)
	})

	t.Run("tee missing", func(t *testing.T) {
		ec := testSeasonConfig().Events[1]
		ec.Tees.Female = "Gold"
		_, err := newTestService(testCatalog(t), nil).ProcessTeamRound(context.Background(), ec, in)
		require.ErrorIs(t, err, coursedomain.ErrTeeNotFound)
		require.Contains(t, err.Error(), `team "Eagles"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		bad := in
		bad.Format = "SHAMBLE"
		_, err := newTestService(testCatalog(t), nil).ProcessTeamRound(context.Background(), config.EventConfig{Course: "Test Links"}, bad)
		require.ErrorIs(t, err, scoredomain.ErrUnknownTeamFormat)
	})
}
