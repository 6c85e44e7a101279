// Package observe provides the bot's observability primitives: OpenTelemetry
// metrics with a Prometheus exporter bridge so they can be scraped via the
// standard /metrics endpoint.
//
// A package-level default [Metrics] instance ([DefaultMetrics]) is provided
// for convenience; tests should use [NewMetrics] with a custom
// [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all bot metrics.
const meterName = "github.com/josephoneill/basketball-bot-telegram"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// Queries counts resolved user queries. Use with attributes:
	//   attribute.String("op", ...), attribute.String("plugin", ...), attribute.String("status", ...)
	Queries metric.Int64Counter

	// Updates counts transport updates received. Use with attribute:
	//   attribute.String("kind", ...)  ("message", "callback", "inline")
	Updates metric.Int64Counter

	// UpstreamErrors counts failed requests to the stat hosts. Use with
	// attribute: attribute.String("host", ...)
	UpstreamErrors metric.Int64Counter

	// UpstreamRequestDuration tracks stat host request latency. Use with
	// attributes: attribute.String("host", ...), attribute.String("status", ...)
	UpstreamRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds) sized for
// remote stat host calls.
var latencyBuckets = []float64{
	0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Queries, err = m.Int64Counter("sportsbot.queries",
		metric.WithDescription("Total resolved user queries by operation, plugin, and status."),
	); err != nil {
		return nil, err
	}
	if met.Updates, err = m.Int64Counter("sportsbot.updates",
		metric.WithDescription("Total transport updates received by kind."),
	); err != nil {
		return nil, err
	}
	if met.UpstreamErrors, err = m.Int64Counter("sportsbot.upstream.errors",
		metric.WithDescription("Total failed stat host requests by host."),
	); err != nil {
		return nil, err
	}
	if met.UpstreamRequestDuration, err = m.Float64Histogram("sportsbot.upstream.request.duration",
		metric.WithDescription("Stat host request latency by host and status."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordQuery records one resolved user query with the standard attribute set.
func (m *Metrics) RecordQuery(ctx context.Context, op, plugin, status string) {
	m.Queries.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("plugin", plugin),
			attribute.String("status", status),
		),
	)
}

// RecordUpdate records one received transport update.
func (m *Metrics) RecordUpdate(ctx context.Context, kind string) {
	m.Updates.Add(ctx, 1,
		metric.WithAttributes(attribute.String("kind", kind)),
	)
}

// RecordUpstreamRequest records one stat host request's latency and outcome.
func (m *Metrics) RecordUpstreamRequest(ctx context.Context, host, status string, seconds float64) {
	m.UpstreamRequestDuration.Record(ctx, seconds,
		metric.WithAttributes(
			attribute.String("host", host),
			attribute.String("status", status),
		),
	)
}

// RecordUpstreamError records one failed stat host request.
func (m *Metrics) RecordUpstreamError(ctx context.Context, host string) {
	m.UpstreamErrors.Add(ctx, 1,
		metric.WithAttributes(attribute.String("host", host)),
	)
}
