package seasondomain

import (
	"testing"

	"github.com/stretchr/testify/require"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
)

func member(name string, card scoredomain.Scorecard) TeamMember {
	return TeamMember{Player: Player{Name: name, Gender: coursedomain.GenderMale}, HandicapIndex: 12, Scorecard: card}
}

func TestNewTeamRoundInput(t *testing.T) {
	none := scoredomain.IncompleteScorecard{}
	teams := []TeamInput{
		{Name: "Eagles", Members: []TeamMember{member("ann", none), member("bob", none)}},
		{Name: "Hawks", Members: []TeamMember{member("cat", none), member("dan", none), member("eve", none)}},
	}

	in, err := NewTeamRoundInput(scoredomain.FormatBestBall, DefaultTeamAllowances(), teams)
	require.NoError(t, err)
	require.Equal(t, scoredomain.FormatBestBall, in.Format)
	require.Equal(t, scoredomain.BestBallAllowance, in.Allowances.BestBall)
	require.Len(t, in.Teams, 2)
}

func TestNewTeamRoundInputErrors(t *testing.T) {
	none := scoredomain.IncompleteScorecard{}
	pair := func(team, a, b string) TeamInput {
		return TeamInput{Name: team, Members: []TeamMember{member(a, none), member(b, none)}}
	}

	tests := []struct {
		name    string
		format  scoredomain.TeamFormat
		teams   []TeamInput
		wantErr error
	}{
		{name: "no teams", format: scoredomain.FormatBestBall, wantErr: ErrInvalidTeam},
		{name: "blank name", format: scoredomain.FormatBestBall, teams: []TeamInput{pair(" ", "ann", "bob")}, wantErr: ErrInvalidTeam},
		{
			name:    "team twice",
			format:  scoredomain.FormatBestBall,
			teams:   []TeamInput{pair("Eagles", "ann", "bob"), pair("Eagles", "cat", "dan")},
			wantErr: ErrInvalidTeam,
		},
		{
			name:    "player on two teams",
			format:  scoredomain.FormatBestBall,
			teams:   []TeamInput{pair("Eagles", "ann", "bob"), pair("Hawks", "cat", "ann")},
			wantErr: ErrDuplicatePlayer,
		},
		{
			name:    "solo best ball",
			format:  scoredomain.FormatBestBall,
			teams:   []TeamInput{{Name: "Eagles", Members: []TeamMember{member("ann", none)}}},
			wantErr: scoredomain.ErrTeamSize,
		},
		{
			name:   "three-person scramble",
			format: scoredomain.FormatScramble,
			teams: []TeamInput{{Name: "Eagles", Members: []TeamMember{
				member("ann", none), member("bob", none), member("cat", none),
			}}},
			wantErr: scoredomain.ErrTeamSize,
		},
		{
			name:    "missing scorecard",
			format:  scoredomain.FormatScramble,
			teams:   []TeamInput{{Name: "Eagles", Members: []TeamMember{member("ann", nil), member("bob", none)}}},
			wantErr: ErrInvalidTeam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTeamRoundInput(tt.format, DefaultTeamAllowances(), tt.teams)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTeamInputScrambleCard(t *testing.T) {
	strokes := make([]int, coursedomain.HoleCount)
	for i := range strokes {
		strokes[i] = 4
	}
	card, err := scoredomain.ScorecardFromStrokes(strokes...)
	require.NoError(t, err)

	team := TeamInput{Name: "Eagles", Members: []TeamMember{
		member("ann", scoredomain.IncompleteScorecard{}),
		member("bob", card),
	}}
	require.Equal(t, card, team.ScrambleCard())

	team.Members[1].Scorecard = scoredomain.IncompleteScorecard{}
	require.Equal(t, scoredomain.IncompleteScorecard{}, team.ScrambleCard())
}
