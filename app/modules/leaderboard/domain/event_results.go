package leaderboarddomain

import (
	"fmt"

	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
)

// AggregateResult is a player's ranks and points for one event.
type AggregateResult struct {
	GrossPoints float64
	NetPoints   float64
	EventPoints float64
	GrossRank   Rank
	NetRank     Rank
	EventRank   Rank
}

// PlayerResult pairs a player with their individual result at an event.
type PlayerResult struct {
	Player     string
	Individual scoredomain.IndividualResult
}

// EventPlayerResult is the full per-player result of an event.
type EventPlayerResult struct {
	Player     string
	Individual scoredomain.IndividualResult
	Aggregate  AggregateResult
}

// GenerateEventResults ranks and awards points for one event. Complete
// results are ranked by gross and net (lowest first), paid from the
// event type's table, then ranked by event points (highest first).
// Incomplete results earn nothing and share the event rank one below the
// last complete result. Output keeps the input order.
func GenerateEventResults(results []PlayerResult, eventType EventType) ([]EventPlayerResult, error) {
	table, err := PointsTableFor(eventType)
	if err != nil {
		return nil, err
	}

	complete := make(map[string]scoredomain.CompleteIndividualResult, len(results))
	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		if _, dup := seen[r.Player]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayer, r.Player)
		}
		seen[r.Player] = struct{}{}

		switch ind := r.Individual.(type) {
		case scoredomain.CompleteIndividualResult:
			complete[r.Player] = ind
		case scoredomain.IncompleteIndividualResult:
		default:
			return nil, fmt.Errorf("%w: %q has %T", ErrUnsupportedResult, r.Player, r.Individual)
		}
	}

	aggregates, err := aggregateComplete(complete, table)
	if err != nil {
		return nil, err
	}

	lastPlace := 0
	for _, a := range aggregates {
		if p, _ := a.EventRank.Position(); p > lastPlace {
			lastPlace = p
		}
	}
	incompleteRank := mustRank(lastPlace + 1)

	out := make([]EventPlayerResult, len(results))
	for i, r := range results {
		agg, ok := aggregates[r.Player]
		if !ok {
			agg = AggregateResult{
				GrossRank: NoRank,
				NetRank:   NoRank,
				EventRank: incompleteRank,
			}
		}
		out[i] = EventPlayerResult{
			Player:     r.Player,
			Individual: r.Individual,
			Aggregate:  agg,
		}
	}
	return out, nil
}

func aggregateComplete(complete map[string]scoredomain.CompleteIndividualResult, table PointsTable) (map[string]AggregateResult, error) {
	gross := make(map[string]int, len(complete))
	net := make(map[string]int, len(complete))
	for player, r := range complete {
		gross[player] = r.TotalGross
		net[player] = r.TotalNet
	}

	grossRanks := AllocateRanks(gross, Ascending)
	netRanks := AllocateRanks(net, Ascending)

	grossPoints, err := AllocatePoints(grossRanks, table)
	if err != nil {
		return nil, fmt.Errorf("gross points: %w", err)
	}
	netPoints, err := AllocatePoints(netRanks, table)
	if err != nil {
		return nil, fmt.Errorf("net points: %w", err)
	}

	eventPoints := make(map[string]float64, len(complete))
	for player := range complete {
		eventPoints[player] = grossPoints[player] + netPoints[player]
	}
	eventRanks := AllocateRanks(eventPoints, Descending)

	out := make(map[string]AggregateResult, len(complete))
	for player := range complete {
		out[player] = AggregateResult{
			GrossPoints: grossPoints[player],
			NetPoints:   netPoints[player],
			EventPoints: eventPoints[player],
			GrossRank:   mustRank(grossRanks[player]),
			NetRank:     mustRank(netRanks[player]),
			EventRank:   mustRank(eventRanks[player]),
		}
	}
	return out, nil
}
