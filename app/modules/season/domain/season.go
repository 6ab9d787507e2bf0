package seasondomain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
)

// Player is a league member. Gender selects the tee played at each event.
type Player struct {
	Name   string
	Gender coursedomain.Gender
}

// PlayerEventInput is what a player brought to one event.
type PlayerEventInput struct {
	HandicapIndex float64
	Scorecard     scoredomain.Scorecard
}

// EventInput holds every player's input for one numbered event.
type EventInput struct {
	Number  int
	Players map[string]PlayerEventInput
}

// SeasonModelInput is the validated input for a season run.
type SeasonModelInput struct {
	Players []Player
	Events  map[int]EventInput
}

// NewSeasonModelInput validates that player names are unique and that every
// event lists exactly the season's players.
func NewSeasonModelInput(players []Player, events []EventInput) (SeasonModelInput, error) {
	expected := make(map[string]struct{}, len(players))
	for _, p := range players {
		if strings.TrimSpace(p.Name) == "" {
			return SeasonModelInput{}, fmt.Errorf("%w: empty player name", ErrConsistency)
		}
		if _, dup := expected[p.Name]; dup {
			return SeasonModelInput{}, fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.Name)
		}
		expected[p.Name] = struct{}{}
	}

	byNumber := make(map[int]EventInput, len(events))
	for _, e := range events {
		if e.Number < 1 {
			return SeasonModelInput{}, fmt.Errorf("%w: event number %d", ErrInvalidEvent, e.Number)
		}
		if _, dup := byNumber[e.Number]; dup {
			return SeasonModelInput{}, fmt.Errorf("%w: event %d listed twice", ErrInvalidEvent, e.Number)
		}
		if !sameNames(expected, e.Players) {
			return SeasonModelInput{}, fmt.Errorf("%w: event %d: expected players %v, found %v",
				ErrConsistency, e.Number, sortedKeys(expected), sortedKeys(e.Players))
		}
		for name, p := range e.Players {
			if p.Scorecard == nil {
				return SeasonModelInput{}, fmt.Errorf("%w: event %d: %q has no scorecard", ErrInvalidEvent, e.Number, name)
			}
		}
		byNumber[e.Number] = e
	}

	return SeasonModelInput{
		Players: slices.Clone(players),
		Events:  byNumber,
	}, nil
}

// EventNumbers returns the event numbers in ascending order.
func (in SeasonModelInput) EventNumbers() []int {
	return slices.Sorted(maps.Keys(in.Events))
}

// PlayerNames returns player names in season order.
func (in SeasonModelInput) PlayerNames() []string {
	names := make([]string, len(in.Players))
	for i, p := range in.Players {
		names[i] = p.Name
	}
	return names
}

// SeasonModelResults is the output of a season run.
type SeasonModelResults struct {
	Events map[int][]leaderboarddomain.EventPlayerResult
	Season []leaderboarddomain.SeasonOverallResult
}

// EventNumbers returns the processed event numbers in ascending order.
func (r SeasonModelResults) EventNumbers() []int {
	return slices.Sorted(maps.Keys(r.Events))
}

// Standings returns the season results ordered by season rank, then name.
func (r SeasonModelResults) Standings() []leaderboarddomain.SeasonOverallResult {
	out := slices.Clone(r.Season)
	slices.SortStableFunc(out, func(a, b leaderboarddomain.SeasonOverallResult) int {
		c, err := a.Rank.Compare(b.Rank)
		if err != nil || c == 0 {
			return strings.Compare(a.Player, b.Player)
		}
		return c
	})
	return out
}

func sameNames[V any](expected map[string]struct{}, found map[string]V) bool {
	if len(expected) != len(found) {
		return false
	}
	for name := range found {
		if _, ok := expected[name]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
