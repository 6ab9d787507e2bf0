package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"

	coursedb "github.com/Black-And-White-Club/golf-league/app/modules/course/infrastructure/repositories"
	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	seasonservice "github.com/Black-And-White-Club/golf-league/app/modules/season/application"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
	seasonmetrics "github.com/Black-And-White-Club/golf-league/app/modules/season/infrastructure/metrics"
	"github.com/Black-And-White-Club/golf-league/app/modules/season/infrastructure/parsers"
	"github.com/Black-And-White-Club/golf-league/config"
)

func newTeamsCommand() *cli.Command {
	return &cli.Command{
		Name:  "teams",
		Usage: "score and rank a best-ball or scramble round",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "season configuration file", Value: "season.yaml"},
			&cli.IntFlag{Name: "event", Usage: "configured event whose course and tees are played", Required: true},
			&cli.StringFlag{Name: "input", Usage: "team scores .csv (Team, Player, Gender, Index, 1..18)", Required: true},
			&cli.StringFlag{Name: "format", Usage: "best_ball or scramble", Value: string(scoredomain.FormatBestBall)},
			&cli.Float64Flag{Name: "allowance", Usage: "best-ball playing allowance", Value: scoredomain.BestBallAllowance},
			&cli.Float64Flag{Name: "lower-allowance", Usage: "scramble allowance for the lower index", Value: scoredomain.ScrambleLowerAllowance},
			&cli.Float64Flag{Name: "higher-allowance", Usage: "scramble allowance for the higher index", Value: scoredomain.ScrambleHigherAllowance},
		},
		Action: runTeams,
	}
}

func runTeams(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ec, ok := cfg.Season.Events[c.Int("event")]
	if !ok {
		return fmt.Errorf("%w: event %d", seasondomain.ErrUnknownEvent, c.Int("event"))
	}
	format, err := scoredomain.ParseTeamFormat(c.String("format"))
	if err != nil {
		return err
	}

	logger := newLogger(c, cfg)
	courses, err := coursedb.LoadYAMLFile(cfg.CoursesPath())
	if err != nil {
		return fmt.Errorf("failed to load courses: %w", err)
	}

	data, err := os.ReadFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	allowances := seasondomain.TeamAllowances{
		BestBall:       c.Float64("allowance"),
		ScrambleLower:  c.Float64("lower-allowance"),
		ScrambleHigher: c.Float64("higher-allowance"),
	}
	in, err := parsers.NewTeamCSVParser(format, allowances).Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.String("input"), err)
	}

	service := seasonservice.NewSeasonService(courses, nil, logger, seasonmetrics.NoOpMetrics{}, otel.Tracer("league"))
	standings, err := service.ProcessTeamRound(c.Context, ec, in)
	if err != nil {
		return err
	}
	return printTeamStandings(c, standings)
}

func printTeamStandings(c *cli.Context, standings []leaderboarddomain.TeamStanding) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEAM\tGROSS\tGROSS RANK\tNET\tNET RANK\tHANDICAP")
	for _, s := range standings {
		r, ok := s.Result.(scoredomain.CompleteTeamResult)
		if !ok {
			fmt.Fprintf(tw, "%s\t-\t%s\t-\t%s\t-\n", s.Team, s.GrossRank, s.NetRank)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\t%d\n", s.Team, r.TotalGross, s.GrossRank, r.TotalNet, s.NetRank, r.PlayingHandicap)
	}
	return tw.Flush()
}
