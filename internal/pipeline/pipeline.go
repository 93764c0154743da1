package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/weather-hazards/internal/domain"
	"github.com/couchcryptid/weather-hazards/internal/observability"
)

// Lookup outcomes, used as the metrics "outcome" label.
const (
	OutcomeSuccess       = "success"
	OutcomeNotFound      = "not_found"
	OutcomeUpstreamError = "upstream_error"
	OutcomeUnreachable   = "unreachable"
	OutcomeMalformed     = "malformed"
	OutcomeError         = "error"
)

// Fetcher retrieves the provider document for a location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (domain.ProviderResponse, error)
}

// Publisher forwards a classified report to a downstream sink.
type Publisher interface {
	Publish(ctx context.Context, report domain.HazardReport) error
}

// Pipeline runs one fetch-classify-publish lookup.
type Pipeline struct {
	fetcher   Fetcher
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline. Pass a nil publisher to skip report publishing.
func New(f Fetcher, p Publisher, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:   f,
		publisher: p,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run fetches weather for location, classifies it, and publishes the report.
// Fetch and snapshot errors abort the lookup; a publish failure is logged and
// the report is still returned.
func (p *Pipeline) Run(ctx context.Context, location string) (domain.HazardReport, error) {
	resp, err := p.fetcher.Fetch(ctx, location)
	if err != nil {
		p.metrics.Lookups.WithLabelValues(Outcome(err)).Inc()
		return domain.HazardReport{}, fmt.Errorf("fetch weather: %w", err)
	}

	snap, err := domain.NewSnapshot(resp)
	if err != nil {
		p.metrics.Lookups.WithLabelValues(Outcome(err)).Inc()
		return domain.HazardReport{}, fmt.Errorf("build snapshot: %w", err)
	}

	result := domain.Classify(snap)
	report := domain.NewReport(location, result)

	p.metrics.Lookups.WithLabelValues(OutcomeSuccess).Inc()
	p.metrics.LastSuccess.Set(float64(report.CheckedAt.Unix()))
	p.recordHazards(result)

	p.logger.Info("hazards classified",
		"location", report.Label(),
		"vampires", result.Vampires,
		"precipitation", result.Precipitation,
		"temperature", result.Temperature,
		"sun", result.Sun,
	)

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, report); err != nil {
			p.logger.Warn("publish hazard report failed", "error", err, "location", report.Label())
			p.metrics.ReportsPublished.WithLabelValues(OutcomeError).Inc()
		} else {
			p.metrics.ReportsPublished.WithLabelValues(OutcomeSuccess).Inc()
		}
	}

	return report, nil
}

func (p *Pipeline) recordHazards(r domain.HazardResult) {
	if r.Vampires != domain.VampiresNo {
		p.metrics.Hazards.WithLabelValues("vampires", r.Vampires.String()).Inc()
	}
	if r.Precipitation != domain.PrecipitationOk {
		p.metrics.Hazards.WithLabelValues("precipitation", r.Precipitation.String()).Inc()
	}
	if r.Temperature != domain.TemperatureOk {
		p.metrics.Hazards.WithLabelValues("temperature", r.Temperature.String()).Inc()
	}
	if r.Sun != domain.SunOk {
		p.metrics.Hazards.WithLabelValues("sun", r.Sun.String()).Inc()
	}
}

// Outcome maps a lookup error onto its metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrLocationNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrUpstream):
		return OutcomeUpstreamError
	case errors.Is(err, domain.ErrUnreachable):
		return OutcomeUnreachable
	case errors.Is(err, domain.ErrMalformedResponse):
		return OutcomeMalformed
	default:
		return OutcomeError
	}
}
