package seasonservice

import (
	"context"
	"fmt"
	"log/slog"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
	"github.com/Black-And-White-Club/golf-league/config"
)

// ProcessTeamRound scores every team on the event's course and ranks them by
// gross and net. Each member plays the event tee for their gender; a
// scramble team plays its first member's tee.
func (s *SeasonService) ProcessTeamRound(ctx context.Context, ec config.EventConfig, in seasondomain.TeamRoundInput) ([]leaderboarddomain.TeamStanding, error) {
	return withTelemetry(s, ctx, "ProcessTeamRound", ec.Name, func(ctx context.Context) ([]leaderboarddomain.TeamStanding, error) {
		course, err := s.courses.GetCourse(ec.Course)
		if err != nil {
			return nil, err
		}

		entries := make([]leaderboarddomain.TeamEntry, 0, len(in.Teams))
		for _, team := range in.Teams {
			var result scoredomain.TeamResult
			switch in.Format {
			case scoredomain.FormatBestBall:
				result, err = s.bestBall(ec, course, team, in.Allowances.BestBall)
			case scoredomain.FormatScramble:
				result, err = s.scramble(ec, course, team, in.Allowances)
			default:
				err = fmt.Errorf("%w: %q", scoredomain.ErrUnknownTeamFormat, in.Format)
			}
			if err != nil {
				return nil, fmt.Errorf("team %q: %w", team.Name, err)
			}
			entries = append(entries, leaderboarddomain.TeamEntry{Team: team.Name, Result: result})
		}

		standings, err := leaderboarddomain.RankTeamResults(entries)
		if err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "Team results generated",
			slog.String("course", course.Name),
			slog.String("format", string(in.Format)),
			slog.Int("teams", len(standings)),
		)
		return standings, nil
	})
}

func (s *SeasonService) bestBall(ec config.EventConfig, course coursedomain.Course, team seasondomain.TeamInput, allowance float64) (scoredomain.TeamResult, error) {
	members := make([]scoredomain.BestBallMember, 0, len(team.Members))
	for _, m := range team.Members {
		tee, err := eventTee(ec, course, m.Player.Gender)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", m.Player.Name, err)
		}
		members = append(members, scoredomain.BestBallMember{
			HandicapIndex: m.HandicapIndex,
			Scorecard:     m.Scorecard,
			Tee:           tee,
		})
	}
	return scoredomain.GenerateBestBallResult(members, course, allowance)
}

func (s *SeasonService) scramble(ec config.EventConfig, course coursedomain.Course, team seasondomain.TeamInput, allowances seasondomain.TeamAllowances) (scoredomain.TeamResult, error) {
	if len(team.Members) != 2 {
		return nil, fmt.Errorf("%w: scramble has %d players", scoredomain.ErrTeamSize, len(team.Members))
	}
	tee, err := eventTee(ec, course, team.Members[0].Player.Gender)
	if err != nil {
		return nil, err
	}
	return scoredomain.GenerateScrambleResult(scoredomain.ScrambleInput{
		Indices:         [2]float64{team.Members[0].HandicapIndex, team.Members[1].HandicapIndex},
		Scorecard:       team.ScrambleCard(),
		Course:          course,
		Tee:             tee,
		LowerAllowance:  allowances.ScrambleLower,
		HigherAllowance: allowances.ScrambleHigher,
	})
}

func eventTee(ec config.EventConfig, course coursedomain.Course, gender coursedomain.Gender) (coursedomain.Tee, error) {
	name, err := ec.TeeFor(gender)
	if err != nil {
		return coursedomain.Tee{}, err
	}
	return course.Tee(gender, name)
}
