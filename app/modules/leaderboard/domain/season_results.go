package leaderboarddomain

import (
	"fmt"
	"maps"
	"slices"

	handicapdomain "github.com/Black-And-White-Club/golf-league/app/modules/handicap/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
)

// SeasonOverallResult is a player's season-to-date standing.
type SeasonOverallResult struct {
	Player            string
	Points            float64
	Birdies           int
	Eagles            int
	Albatrosses       int
	EventsCompleted   int
	NetStrokeWins     int
	NetStrokeTopFives int
	NetStrokeTopTens  int
	EventWins         int
	EventTopFives     int
	EventTopTens      int
	SeasonHandicap    float64
	// Rank is set once every player's points are known.
	Rank Rank
}

// GenerateSeasonResults folds every event's results into one standing per
// player, then ranks players by season points (highest first). Events are
// folded in the order given and numbered from 1; players are returned in the
// order given.
func GenerateSeasonResults(players []string, events [][]EventPlayerResult, rule handicapdomain.SeasonRule) ([]SeasonOverallResult, error) {
	numbers := make([]int, len(events))
	for i := range events {
		numbers[i] = i + 1
	}
	return generateSeasonResults(players, numbers, events, rule)
}

// GenerateSeasonResultsByEvent is GenerateSeasonResults over events keyed by
// event number, folded in ascending number.
func GenerateSeasonResultsByEvent(players []string, events map[int][]EventPlayerResult, rule handicapdomain.SeasonRule) ([]SeasonOverallResult, error) {
	numbers := slices.Sorted(maps.Keys(events))
	ordered := make([][]EventPlayerResult, len(numbers))
	for i, n := range numbers {
		ordered[i] = events[n]
	}
	return generateSeasonResults(players, numbers, ordered, rule)
}

func generateSeasonResults(players []string, numbers []int, events [][]EventPlayerResult, rule handicapdomain.SeasonRule) ([]SeasonOverallResult, error) {
	index := make(map[string]int, len(players))
	for i, p := range players {
		if _, dup := index[p]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayer, p)
		}
		index[p] = i
	}

	byPlayer := make([]map[int]EventPlayerResult, len(players))
	for i := range byPlayer {
		byPlayer[i] = make(map[int]EventPlayerResult, len(events))
	}
	for e, results := range events {
		for _, r := range results {
			i, ok := index[r.Player]
			if !ok {
				return nil, fmt.Errorf("%w: event %d has unknown player %q", ErrMissingPlayer, numbers[e], r.Player)
			}
			byPlayer[i][e] = r
		}
	}

	season := make([]SeasonOverallResult, len(players))
	for i, player := range players {
		overall, err := foldPlayerSeason(player, byPlayer[i], numbers, rule)
		if err != nil {
			return nil, err
		}
		season[i] = overall
	}

	points := make(map[string]float64, len(season))
	for _, s := range season {
		points[s.Player] = s.Points
	}
	ranks := AllocateRanks(points, Descending)
	for i := range season {
		season[i].Rank = mustRank(ranks[season[i].Player])
	}

	return season, nil
}

func foldPlayerSeason(player string, results map[int]EventPlayerResult, numbers []int, rule handicapdomain.SeasonRule) (SeasonOverallResult, error) {
	overall := SeasonOverallResult{Player: player}
	var differentials []float64

	for e, number := range numbers {
		r, ok := results[e]
		if !ok {
			return SeasonOverallResult{}, fmt.Errorf("%w: %q not in event %d", ErrMissingPlayer, player, number)
		}

		overall.Points += r.Aggregate.EventPoints
		overall.Birdies += scoredomain.BirdieCount(r.Individual)
		overall.Eagles += scoredomain.EagleCount(r.Individual)
		overall.Albatrosses += scoredomain.AlbatrossCount(r.Individual)

		complete, ok := r.Individual.(scoredomain.CompleteIndividualResult)
		if !ok {
			continue
		}
		overall.EventsCompleted++
		differentials = append(differentials, complete.ScoreDifferential)

		if err := countFinishes(r.Aggregate.NetRank, &overall.NetStrokeWins, &overall.NetStrokeTopFives, &overall.NetStrokeTopTens); err != nil {
			return SeasonOverallResult{}, fmt.Errorf("%q event %d net rank: %w", player, number, err)
		}
		if err := countFinishes(r.Aggregate.EventRank, &overall.EventWins, &overall.EventTopFives, &overall.EventTopTens); err != nil {
			return SeasonOverallResult{}, fmt.Errorf("%q event %d event rank: %w", player, number, err)
		}
	}

	overall.SeasonHandicap = handicapdomain.SeasonHandicap(differentials, rule)
	return overall, nil
}

func countFinishes(r Rank, wins, topFives, topTens *int) error {
	win, err := r.IsWin()
	if err != nil {
		return err
	}
	topFive, err := r.IsTopFive()
	if err != nil {
		return err
	}
	topTen, err := r.IsTopTen()
	if err != nil {
		return err
	}

	if win {
		*wins++
	}
	if topFive {
		*topFives++
	}
	if topTen {
		*topTens++
	}
	return nil
}
