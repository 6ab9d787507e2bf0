package seasonservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
	seasonevents "github.com/Black-And-White-Club/golf-league/app/modules/season/domain/events"
	"github.com/Black-And-White-Club/golf-league/config"
)

// ProcessSeason scores every event present in the input, in ascending event
// number, then folds them into season standings. Configured events with no
// input are skipped; input events without configuration fail the run.
func (s *SeasonService) ProcessSeason(ctx context.Context, cfg config.SeasonConfig, in seasondomain.SeasonModelInput) (seasondomain.SeasonModelResults, error) {
	return withTelemetry(s, ctx, "ProcessSeason", cfg.Name, func(ctx context.Context) (seasondomain.SeasonModelResults, error) {
		rule, err := cfg.Rule()
		if err != nil {
			return seasondomain.SeasonModelResults{}, err
		}

		numbers := in.EventNumbers()
		for _, n := range numbers {
			if _, ok := cfg.Events[n]; !ok {
				return seasondomain.SeasonModelResults{}, fmt.Errorf("%w: event %d", seasondomain.ErrUnknownEvent, n)
			}
		}
		for _, n := range cfg.EventNumbers() {
			if _, ok := in.Events[n]; !ok {
				s.logger.DebugContext(ctx, "Skipping event with no scores", slog.Int("event_number", n))
			}
		}

		runID := uuid.NewString()
		genders := make(map[string]coursedomain.Gender, len(in.Players))
		for _, p := range in.Players {
			genders[p.Name] = p.Gender
		}

		results := seasondomain.SeasonModelResults{
			Events: make(map[int][]leaderboarddomain.EventPlayerResult, len(numbers)),
		}
		for _, n := range numbers {
			eventResults, err := s.processEvent(ctx, runID, cfg.Name, n, cfg.Events[n], in.Events[n], in.PlayerNames(), genders)
			if err != nil {
				return seasondomain.SeasonModelResults{}, fmt.Errorf("event %d: %w", n, err)
			}
			results.Events[n] = eventResults
		}

		season, err := leaderboarddomain.GenerateSeasonResultsByEvent(in.PlayerNames(), results.Events, rule)
		if err != nil {
			return seasondomain.SeasonModelResults{}, fmt.Errorf("season results: %w", err)
		}
		results.Season = season

		if err := s.publish(ctx, seasonevents.SeasonResultsGeneratedTopic, runID, cfg.Name, seasonevents.SeasonResultsGeneratedPayload{
			RunID:       runID,
			Season:      cfg.Name,
			Events:      numbers,
			Standings:   seasonevents.SummarizeSeason(results.Standings()),
			GeneratedAt: s.now().UTC(),
		}); err != nil {
			return seasondomain.SeasonModelResults{}, err
		}

		s.logger.InfoContext(ctx, "Season results generated",
			slog.String("run_id", runID),
			slog.Int("events", len(numbers)),
			slog.Int("players", len(season)),
		)
		return results, nil
	})
}

func (s *SeasonService) processEvent(
	ctx context.Context,
	runID, season string,
	number int,
	ec config.EventConfig,
	input seasondomain.EventInput,
	players []string,
	genders map[string]coursedomain.Gender,
) (_ []leaderboarddomain.EventPlayerResult, err error) {
	ctx, span := s.tracer.Start(ctx, "ProcessEvent", trace.WithAttributes(
		attribute.Int("event_number", number),
		attribute.String("course", ec.Course),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	eventType, err := ec.EventType()
	if err != nil {
		return nil, err
	}
	course, err := s.courses.GetCourse(ec.Course)
	if err != nil {
		return nil, err
	}

	individual := make([]leaderboarddomain.PlayerResult, 0, len(players))
	for _, player := range players {
		pi := input.Players[player]

		teeName, err := ec.TeeFor(genders[player])
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", player, err)
		}
		tee, err := course.Tee(genders[player], teeName)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", player, err)
		}

		r, err := scoredomain.GenerateIndividualResult(scoredomain.IndividualInput{
			HandicapIndex: pi.HandicapIndex,
			Scorecard:     pi.Scorecard,
			Course:        course,
			Tee:           tee,
		})
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", player, err)
		}
		s.metrics.RecordPlayerResult(ctx, scoredomain.IsComplete(r))
		individual = append(individual, leaderboarddomain.PlayerResult{Player: player, Individual: r})
	}

	eventResults, err := leaderboarddomain.GenerateEventResults(individual, eventType)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordEventProcessed(ctx, string(eventType))

	s.logger.InfoContext(ctx, "Event results generated",
		slog.Int("event_number", number),
		slog.String("course", course.Name),
		slog.String("event_type", string(eventType)),
		slog.Int("players", len(eventResults)),
	)

	err = s.publish(ctx, seasonevents.EventResultsGeneratedTopic, runID, season, seasonevents.EventResultsGeneratedPayload{
		RunID:       runID,
		Season:      season,
		EventNumber: number,
		EventName:   ec.Name,
		Course:      course.Name,
		EventType:   string(eventType),
		Results:     seasonevents.SummarizeEvent(eventResults),
		GeneratedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return eventResults, nil
}

func (s *SeasonService) publish(ctx context.Context, topic, runID, season string, payload any) error {
	if s.publisher == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(seasonevents.MetadataTopic, topic)
	msg.Metadata.Set(seasonevents.MetadataRunID, runID)
	msg.Metadata.Set(seasonevents.MetadataSeason, season)
	msg.SetContext(ctx)

	if err := s.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}
	return nil
}
