package seasonservice

import (
	"context"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
	"github.com/Black-And-White-Club/golf-league/config"
)

// Service defines the interface for the SeasonService.
type Service interface {
	// Scores every configured event in the input, then folds the season.
	ProcessSeason(ctx context.Context, cfg config.SeasonConfig, in seasondomain.SeasonModelInput) (seasondomain.SeasonModelResults, error)
	// Scores and ranks a single team round on an event's course.
	ProcessTeamRound(ctx context.Context, ec config.EventConfig, in seasondomain.TeamRoundInput) ([]leaderboarddomain.TeamStanding, error)
}
