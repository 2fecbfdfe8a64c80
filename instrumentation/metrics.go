package instrumentation

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the metric instruments for the token exchange path.
type Metrics struct {
	// ExchangesTotal counts token exchanges attempted, by grant type.
	ExchangesTotal metric.Int64Counter

	// ExchangeDuration measures token exchange duration in milliseconds,
	// by grant type.
	ExchangeDuration metric.Float64Histogram

	// ExchangeErrors counts failed token exchanges, by grant type and
	// error kind.
	ExchangeErrors metric.Int64Counter
}

// newMetrics creates and registers all metric instruments.
func newMetrics(inst *Instrumentation) (*Metrics, error) {
	m := &Metrics{}
	meter := inst.Meter("client")

	var err error
	m.ExchangesTotal, err = meter.Int64Counter(
		"oauth2.client.exchanges",
		metric.WithDescription("Total number of token exchanges attempted"),
		metric.WithUnit("{exchange}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchanges counter: %w", err)
	}

	m.ExchangeDuration, err = meter.Float64Histogram(
		"oauth2.client.exchange.duration",
		metric.WithDescription("Token exchange duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange.duration histogram: %w", err)
	}

	m.ExchangeErrors, err = meter.Int64Counter(
		"oauth2.client.exchange.errors",
		metric.WithDescription("Total number of failed token exchanges"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange.errors counter: %w", err)
	}

	return m, nil
}
