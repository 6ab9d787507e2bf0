package seasondomain

import (
	"fmt"
	"strings"

	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
)

// TeamMember is one partner's line in a team round.
type TeamMember struct {
	Player        Player
	HandicapIndex float64
	Scorecard     scoredomain.Scorecard
}

// TeamInput is a named team with its members in sheet order.
type TeamInput struct {
	Name    string
	Members []TeamMember
}

// TeamAllowances are the playing allowances for team formats.
type TeamAllowances struct {
	BestBall       float64
	ScrambleLower  float64
	ScrambleHigher float64
}

// DefaultTeamAllowances returns the league's standard team allowances.
func DefaultTeamAllowances() TeamAllowances {
	return TeamAllowances{
		BestBall:       scoredomain.BestBallAllowance,
		ScrambleLower:  scoredomain.ScrambleLowerAllowance,
		ScrambleHigher: scoredomain.ScrambleHigherAllowance,
	}
}

// TeamRoundInput is a validated single-round team competition.
type TeamRoundInput struct {
	Format     scoredomain.TeamFormat
	Allowances TeamAllowances
	Teams      []TeamInput
}

// NewTeamRoundInput checks team names are unique, that each player is on
// one team only, and that team sizes fit the format: two for a scramble,
// at least two for best ball.
func NewTeamRoundInput(format scoredomain.TeamFormat, allowances TeamAllowances, teams []TeamInput) (TeamRoundInput, error) {
	if len(teams) == 0 {
		return TeamRoundInput{}, fmt.Errorf("%w: no teams", ErrInvalidTeam)
	}

	names := make(map[string]struct{}, len(teams))
	players := make(map[string]string)
	for _, team := range teams {
		if strings.TrimSpace(team.Name) == "" {
			return TeamRoundInput{}, fmt.Errorf("%w: empty team name", ErrInvalidTeam)
		}
		if _, dup := names[team.Name]; dup {
			return TeamRoundInput{}, fmt.Errorf("%w: team %q listed twice", ErrInvalidTeam, team.Name)
		}
		names[team.Name] = struct{}{}

		switch n := len(team.Members); {
		case format == scoredomain.FormatScramble && n != 2:
			return TeamRoundInput{}, fmt.Errorf("%w: scramble team %q has %d players", scoredomain.ErrTeamSize, team.Name, n)
		case n < 2:
			return TeamRoundInput{}, fmt.Errorf("%w: team %q has %d players", scoredomain.ErrTeamSize, team.Name, n)
		}

		for _, m := range team.Members {
			if other, dup := players[m.Player.Name]; dup {
				return TeamRoundInput{}, fmt.Errorf("%w: %q plays for %q and %q", ErrDuplicatePlayer, m.Player.Name, other, team.Name)
			}
			players[m.Player.Name] = team.Name
			if m.Scorecard == nil {
				return TeamRoundInput{}, fmt.Errorf("%w: team %q: %q has no scorecard", ErrInvalidTeam, team.Name, m.Player.Name)
			}
		}
	}

	return TeamRoundInput{Format: format, Allowances: allowances, Teams: teams}, nil
}

// ScrambleCard returns the team's shared card: the first complete card among
// its members, or an incomplete card when neither finished.
func (t TeamInput) ScrambleCard() scoredomain.Scorecard {
	for _, m := range t.Members {
		if _, ok := m.Scorecard.(scoredomain.CompleteScorecard); ok {
			return m.Scorecard
		}
	}
	return scoredomain.IncompleteScorecard{}
}
