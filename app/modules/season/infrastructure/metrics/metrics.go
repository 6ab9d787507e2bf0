// Package seasonmetrics records season processing metrics.
package seasonmetrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SeasonMetrics is the set of measurements taken while processing a season.
type SeasonMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordEventProcessed(ctx context.Context, eventType string)
	RecordPlayerResult(ctx context.Context, complete bool)
}

// PrometheusMetrics implements SeasonMetrics on a prometheus registry.
type PrometheusMetrics struct {
	attempts        *prometheus.CounterVec
	successes       *prometheus.CounterVec
	failures        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	eventsProcessed *prometheus.CounterVec
	playerResults   *prometheus.CounterVec
}

const namespace = "league"

// NewPrometheusMetrics registers the season collectors on registry.
func NewPrometheusMetrics(registry prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "season",
			Name:      "operation_attempts_total",
			Help:      "Season operations started.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "season",
			Name:      "operation_successes_total",
			Help:      "Season operations that completed.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "season",
			Name:      "operation_failures_total",
			Help:      "Season operations that returned an error.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "season",
			Name:      "operation_duration_seconds",
			Help:      "Season operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		eventsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "season",
			Name:      "events_processed_total",
			Help:      "Events ranked and pointed.",
		}, []string{"event_type"}),
		playerResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "season",
			Name:      "player_results_total",
			Help:      "Individual results generated.",
		}, []string{"complete"}),
	}

	for _, c := range []prometheus.Collector{m.attempts, m.successes, m.failures, m.duration, m.eventsProcessed, m.playerResults} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordEventProcessed(_ context.Context, eventType string) {
	m.eventsProcessed.WithLabelValues(eventType).Inc()
}

func (m *PrometheusMetrics) RecordPlayerResult(_ context.Context, complete bool) {
	m.playerResults.WithLabelValues(strconv.FormatBool(complete)).Inc()
}

// NoOpMetrics discards every measurement.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordEventProcessed(context.Context, string)                   {}
func (NoOpMetrics) RecordPlayerResult(context.Context, bool)                       {}

var (
	_ SeasonMetrics = (*PrometheusMetrics)(nil)
	_ SeasonMetrics = NoOpMetrics{}
)
