package seasonevents

import (
	"encoding/json"
	"testing"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEvent(t *testing.T) {
	results, err := leaderboarddomain.GenerateEventResults([]leaderboarddomain.PlayerResult{
		{Player: "ann", Individual: scoredomain.CompleteIndividualResult{CourseHandicap: 18, TotalGross: 89, TotalNet: 71, ScoreDifferential: 17.1}},
		{Player: "bob", Individual: scoredomain.IncompleteIndividualResult{}},
	}, leaderboarddomain.EventStandard)
	require.NoError(t, err)

	lines := SummarizeEvent(results)
	require.Equal(t, []PlayerEventSummary{
		{
			Player: "ann", Complete: true, CourseHandicap: 18, Gross: 89, Net: 71, Differential: 17.1,
			GrossPoints: 50, NetPoints: 50, EventPoints: 100, GrossRank: 1, NetRank: 1, EventRank: 1,
		},
		{Player: "bob", EventRank: 2},
	}, lines)

	raw, err := json.Marshal(lines[1])
	require.NoError(t, err)
	require.JSONEq(t, `{"player":"bob","complete":false,"gross_points":0,"net_points":0,"event_points":0,"event_rank":2}`, string(raw))
}

func TestSummarizeSeason(t *testing.T) {
	season, err := leaderboarddomain.GenerateSeasonResults([]string{"ann"}, nil, "")
	require.NoError(t, err)

	require.Equal(t, []SeasonStanding{{Rank: 1, Player: "ann"}}, SummarizeSeason(season))
}
