package seasondomain

import (
	"testing"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	"github.com/stretchr/testify/require"
)

var testPlayers = []Player{
	{Name: "ann", Gender: coursedomain.GenderFemale},
	{Name: "bob", Gender: coursedomain.GenderMale},
}

func entries(names ...string) map[string]PlayerEventInput {
	out := make(map[string]PlayerEventInput, len(names))
	for _, n := range names {
		out[n] = PlayerEventInput{HandicapIndex: 10, Scorecard: scoredomain.IncompleteScorecard{}}
	}
	return out
}

func TestNewSeasonModelInput(t *testing.T) {
	in, err := NewSeasonModelInput(testPlayers, []EventInput{
		{Number: 2, Players: entries("ann", "bob")},
		{Number: 1, Players: entries("bob", "ann")},
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, in.EventNumbers())
	require.Equal(t, []string{"ann", "bob"}, in.PlayerNames())
}

func TestNewSeasonModelInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		players []Player
		events  []EventInput
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing player",
			players: testPlayers,
			events:  []EventInput{{Number: 1, Players: entries("ann")}},
			wantErr: ErrConsistency,
			wantMsg: "expected players [ann bob], found [ann]",
		},
		{
			name:    "extra player",
			players: testPlayers,
			events:  []EventInput{{Number: 3, Players: entries("ann", "bob", "cat")}},
			wantErr: ErrConsistency,
			wantMsg: "event 3",
		},
		{
			name:    "renamed player",
			players: testPlayers,
			events:  []EventInput{{Number: 1, Players: entries("ann", "rob")}},
			wantErr: ErrConsistency,
			wantMsg: "found [ann rob]",
		},
		{
			name:    "duplicate player",
			players: []Player{{Name: "ann"}, {Name: "ann"}},
			wantErr: ErrDuplicatePlayer,
		},
		{
			name:    "blank player",
			players: []Player{{Name: "  "}},
			wantErr: ErrConsistency,
		},
		{
			name:    "duplicate event",
			players: testPlayers,
			events: []EventInput{
				{Number: 1, Players: entries("ann", "bob")},
				{Number: 1, Players: entries("ann", "bob")},
			},
			wantErr: ErrInvalidEvent,
		},
		{
			name:    "event number zero",
			players: testPlayers,
			events:  []EventInput{{Number: 0, Players: entries("ann", "bob")}},
			wantErr: ErrInvalidEvent,
		},
		{
			name:    "nil scorecard",
			players: testPlayers,
			events: []EventInput{{Number: 1, Players: map[string]PlayerEventInput{
				"ann": {HandicapIndex: 1},
				"bob": {HandicapIndex: 2, Scorecard: scoredomain.IncompleteScorecard{}},
			}}},
			wantErr: ErrInvalidEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSeasonModelInput(tt.players, tt.events)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				require.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestSeasonModelResultsStandings(t *testing.T) {
	first, err := leaderboarddomain.NewRank(1)
	require.NoError(t, err)
	second, err := leaderboarddomain.NewRank(2)
	require.NoError(t, err)

	results := SeasonModelResults{
		Events: map[int][]leaderboarddomain.EventPlayerResult{3: nil, 1: nil},
		Season: []leaderboarddomain.SeasonOverallResult{
			{Player: "cat", Rank: second},
			{Player: "bob", Rank: first},
			{Player: "ann", Rank: second},
		},
	}

	require.Equal(t, []int{1, 3}, results.EventNumbers())

	var order []string
	for _, s := range results.Standings() {
		order = append(order, s.Player)
	}
	require.Equal(t, []string{"bob", "ann", "cat"}, order)
	require.Equal(t, "cat", results.Season[0].Player, "standings do not reorder the source")
}
