package handicapdomain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownRule = errors.New("unknown season handicap rule")

// SeasonRule selects how a season handicap is computed once a player has
// completed more than six rounds.
type SeasonRule string

const (
	// RuleLegacy yields 0.0 beyond six rounds, matching historical league results.
	RuleLegacy SeasonRule = "legacy"
	// RuleLowestThree averages the lowest three differentials of any count above six.
	RuleLowestThree SeasonRule = "lowest_three"
)

// ParseSeasonRule maps a config value to a rule; empty means RuleLegacy.
func ParseSeasonRule(s string) (SeasonRule, error) {
	switch SeasonRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", RuleLegacy:
		return RuleLegacy, nil
	case RuleLowestThree:
		return RuleLowestThree, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
	}
}

// SeasonHandicap computes a player's season handicap from the score
// differentials of their completed rounds.
func SeasonHandicap(differentials []float64, rule SeasonRule) float64 {
	base := baseSeasonHandicap(differentials, rule)
	penalty := seasonPenalty(len(differentials))
	if penalty == 0 {
		return base
	}
	return RoundTenth(base - penalty)
}

func baseSeasonHandicap(differentials []float64, rule SeasonRule) float64 {
	n := len(differentials)
	switch {
	case n == 0:
		return 0
	case n <= 3:
		return lowestMean(differentials, 1)
	case n <= 5:
		return lowestMean(differentials, 2)
	case n == 6:
		return lowestMean(differentials, 3)
	case rule == RuleLowestThree:
		return lowestMean(differentials, 3)
	default:
		return 0
	}
}

func seasonPenalty(rounds int) float64 {
	switch rounds {
	case 1:
		return 1.0
	case 2:
		return 0.5
	default:
		return 0
	}
}

func lowestMean(differentials []float64, count int) float64 {
	sorted := slices.Clone(differentials)
	slices.Sort(sorted)

	sum := 0.0
	for _, d := range sorted[:count] {
		sum += d
	}
	return RoundTenth(sum / float64(count))
}
