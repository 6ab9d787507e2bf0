package seasonservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	coursedb "github.com/Black-And-White-Club/golf-league/app/modules/course/infrastructure/repositories"
	seasonmetrics "github.com/Black-And-White-Club/golf-league/app/modules/season/infrastructure/metrics"
)

// SeasonService implements the Service interface.
type SeasonService struct {
	courses   coursedb.Provider
	publisher message.Publisher
	logger    *slog.Logger
	metrics   seasonmetrics.SeasonMetrics
	tracer    trace.Tracer
	now       func() time.Time
}

var _ Service = (*SeasonService)(nil)

// NewSeasonService creates a new SeasonService. A nil publisher disables
// result messages.
func NewSeasonService(
	courses coursedb.Provider,
	publisher message.Publisher,
	logger *slog.Logger,
	metrics seasonmetrics.SeasonMetrics,
	tracer trace.Tracer,
) *SeasonService {
	return &SeasonService{
		courses:   courses,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		now:       time.Now,
	}
}

// operationFunc is the signature for service operation functions.
type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *SeasonService,
	ctx context.Context,
	operationName string,
	season string,
	op operationFunc[T],
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("season", season),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := s.now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		slog.String("operation", operationName),
		slog.String("season", season),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("season", season),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.String("season", season),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		span.SetStatus(codes.Error, wrappedErr.Error())
		var zero T
		return zero, wrappedErr
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully",
		slog.String("operation", operationName),
		slog.String("season", season),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}
