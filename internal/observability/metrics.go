package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "weather_hazards"

// Metrics holds the Prometheus collectors for one CLI run. They live on a
// private registry and are pushed to a Pushgateway, since a short-lived
// process cannot be scraped.
type Metrics struct {
	Lookups          *prometheus.CounterVec // labels: outcome={success,not_found,upstream_error,unreachable,malformed}
	LookupDuration   prometheus.Histogram
	Hazards          *prometheus.CounterVec // labels: category={vampires,precipitation,temperature,sun}, level
	LastSuccess      prometheus.Gauge
	ReportsPublished *prometheus.CounterVec // labels: outcome={success,error}

	registry *prometheus.Registry
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Hazard lookups by outcome.",
		}, []string{"outcome"}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wttr_request_duration_seconds",
			Help:      "wttr.in request duration in seconds, including body download.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		Hazards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hazards_total",
			Help:      "Non-ok hazard judgments by category and level.",
		}, []string{"category", "level"}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful lookup.",
		}),
		ReportsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_published_total",
			Help:      "Hazard reports written to Kafka by outcome.",
		}, []string{"outcome"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.Lookups,
		m.LookupDuration,
		m.Hazards,
		m.LastSuccess,
		m.ReportsPublished,
	)

	return m
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Push replaces the job's metric group on the Pushgateway at url.
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
