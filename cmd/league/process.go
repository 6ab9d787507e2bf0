package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"
	"unicode"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"

	"github.com/Black-And-White-Club/golf-league/app/eventbus"
	coursedb "github.com/Black-And-White-Club/golf-league/app/modules/course/infrastructure/repositories"
	seasonservice "github.com/Black-And-White-Club/golf-league/app/modules/season/application"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
	seasonevents "github.com/Black-And-White-Club/golf-league/app/modules/season/domain/events"
	"github.com/Black-And-White-Club/golf-league/app/modules/season/infrastructure/charts"
	seasonmetrics "github.com/Black-And-White-Club/golf-league/app/modules/season/infrastructure/metrics"
	"github.com/Black-And-White-Club/golf-league/app/modules/season/infrastructure/parsers"
	"github.com/Black-And-White-Club/golf-league/app/modules/season/infrastructure/writers"
	"github.com/Black-And-White-Club/golf-league/config"
)

func newProcessCommand() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "score a season workbook and write results",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "season configuration file", Value: "season.yaml"},
			&cli.StringFlag{Name: "input", Usage: "scores workbook (.xlsx) or single-event .csv", Required: true},
			&cli.StringFlag{Name: "output", Usage: "results workbook to write", Value: "results.xlsx"},
			&cli.StringFlag{Name: "chart", Usage: "write a season points PNG chart to this path"},
			&cli.StringFlag{Name: "player-charts", Usage: "write one cumulative points PNG per player into this directory"},
			&cli.StringFlag{Name: "metrics-addr", Usage: "serve prometheus metrics on this address while processing"},
		},
		Action: runProcess,
	}
}

func runProcess(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(c, cfg)

	courses, err := coursedb.LoadYAMLFile(cfg.CoursesPath())
	if err != nil {
		return fmt.Errorf("failed to load courses: %w", err)
	}

	input, err := readInput(c.String("input"))
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics, err := seasonmetrics.NewPrometheusMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	addr := c.String("metrics-addr")
	if addr == "" {
		addr = cfg.Observability.MetricsAddress
	}
	if addr != "" {
		stop := serveMetrics(logger, addr, registry)
		defer stop()
	}

	bus := eventbus.NewEventBus(logger, false)
	defer bus.Close()
	if err := logResultMessages(c.Context, bus, logger); err != nil {
		return err
	}

	logEventSchedule(c.Context, logger, cfg.Season, time.Now())

	service := seasonservice.NewSeasonService(courses, bus.Publisher(), logger, metrics, otel.Tracer("league"))
	results, err := service.ProcessSeason(c.Context, cfg.Season, input)
	if err != nil {
		return err
	}

	if err := writers.NewXLSXWriter().WriteFile(c.String("output"), results); err != nil {
		return err
	}
	logger.InfoContext(c.Context, "Results written", slog.String("path", c.String("output")))

	if path := c.String("chart"); path != "" {
		png, err := charts.SeasonPointsChart(results.Standings(), charts.DefaultPalette)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		logger.InfoContext(c.Context, "Chart written", slog.String("path", path))
	}
	if dir := c.String("player-charts"); dir != "" {
		if err := writePlayerCharts(dir, results); err != nil {
			return err
		}
		logger.InfoContext(c.Context, "Player charts written", slog.String("dir", dir), slog.Int("players", len(results.Season)))
	}

	return printStandings(c, results)
}

func newLogger(c *cli.Context, cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: cfg.Observability.Level()}))
	if cfg.Observability.Environment != "" {
		logger = logger.With(slog.String("environment", cfg.Observability.Environment))
	}
	return logger
}

func writePlayerCharts(dir string, results seasondomain.SeasonModelResults) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}
	numbers := results.EventNumbers()
	for _, s := range results.Standings() {
		png, err := charts.CumulativePointsChart(s.Player, numbers, results.Events, charts.DefaultPalette)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, chartFileName(s.Player))
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return fmt.Errorf("failed to write chart for %s: %w", s.Player, err)
		}
	}
	return nil
}

// chartFileName turns a player name into a lowercase file name such as "ann-lee.png".
func chartFileName(player string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(player) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		name = "player"
	}
	return name + ".png"
}

func readInput(path string) (seasondomain.SeasonModelInput, error) {
	parser, err := parsers.NewFactory().GetParser(path)
	if err != nil {
		return seasondomain.SeasonModelInput{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return seasondomain.SeasonModelInput{}, fmt.Errorf("failed to read input: %w", err)
	}
	input, err := parser.Parse(data)
	if err != nil {
		return seasondomain.SeasonModelInput{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return input, nil
}

func serveMetrics(logger *slog.Logger, addr string, registry *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("Serving metrics", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", slog.Any("error", err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func logResultMessages(ctx context.Context, bus *eventbus.EventBus, logger *slog.Logger) error {
	for _, topic := range []string{seasonevents.EventResultsGeneratedTopic, seasonevents.SeasonResultsGeneratedTopic} {
		err := bus.Subscribe(ctx, topic, func(ctx context.Context, msg *message.Message) error {
			logger.DebugContext(ctx, "Result message",
				slog.String("topic", msg.Metadata.Get(seasonevents.MetadataTopic)),
				slog.String("run_id", msg.Metadata.Get(seasonevents.MetadataRunID)),
				slog.Int("payload_bytes", len(msg.Payload)),
			)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func logEventSchedule(ctx context.Context, logger *slog.Logger, season config.SeasonConfig, now time.Time) {
	for _, n := range season.EventNumbers() {
		e := season.Events[n]
		date, err := e.ResolveDate(now)
		if err != nil {
			logger.WarnContext(ctx, "Ignoring event date", slog.Int("event_number", n), slog.Any("error", err))
			continue
		}
		attrs := []any{slog.Int("event_number", n), slog.String("name", e.Name), slog.String("course", e.Course)}
		if !date.IsZero() {
			attrs = append(attrs, slog.String("date", date.Format(config.DateLayout)))
		}
		logger.DebugContext(ctx, "Scheduled event", attrs...)
	}
}

func printStandings(c *cli.Context, results seasondomain.SeasonModelResults) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPLAYER\tPOINTS\tEVENTS\tWINS\tHANDICAP")
	for _, s := range results.Standings() {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%d\t%d\t%.1f\n", s.Rank, s.Player, s.Points, s.EventsCompleted, s.EventWins, s.SeasonHandicap)
	}
	return tw.Flush()
}
