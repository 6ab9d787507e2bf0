package leaderboarddomain

import (
	"fmt"

	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
)

// TeamEntry pairs a team name with its result for one round.
type TeamEntry struct {
	Team   string
	Result scoredomain.TeamResult
}

// TeamStanding is a ranked team result. Incomplete teams are unranked.
type TeamStanding struct {
	Team      string
	Result    scoredomain.TeamResult
	GrossRank Rank
	NetRank   Rank
}

// RankTeamResults ranks complete team results by gross and net (lowest
// first). Output keeps the input order.
func RankTeamResults(entries []TeamEntry) ([]TeamStanding, error) {
	gross := make(map[string]int, len(entries))
	net := make(map[string]int, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if _, dup := seen[e.Team]; dup {
			return nil, fmt.Errorf("%w: team %q", ErrDuplicatePlayer, e.Team)
		}
		seen[e.Team] = struct{}{}

		switch r := e.Result.(type) {
		case scoredomain.CompleteTeamResult:
			gross[e.Team] = r.TotalGross
			net[e.Team] = r.TotalNet
		case scoredomain.IncompleteTeamResult:
		default:
			return nil, fmt.Errorf("%w: team %q has %T", ErrUnsupportedResult, e.Team, e.Result)
		}
	}

	grossRanks := AllocateRanks(gross, Ascending)
	netRanks := AllocateRanks(net, Ascending)

	out := make([]TeamStanding, len(entries))
	for i, e := range entries {
		s := TeamStanding{Team: e.Team, Result: e.Result}
		if g, ok := grossRanks[e.Team]; ok {
			s.GrossRank = mustRank(g)
			s.NetRank = mustRank(netRanks[e.Team])
		}
		out[i] = s
	}
	return out, nil
}
