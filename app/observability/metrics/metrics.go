package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	GuideRequestsTotal     metric.Int64Counter
	GuideDurationSeconds   metric.Float64Histogram
	GuideErrorsTotal       metric.Int64Counter
	GuideParseFailures     metric.Int64Counter
	ExplorerSessionsActive metric.Int64UpDownCounter
	ExplorerStaleResponses metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider, so it must run
// after the provider is installed to export anything.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("VibeRoute")
		var err error
		m := &AppMetrics{}

		m.GuideRequestsTotal, err = meter.Int64Counter(
			"guide_requests_total",
			metric.WithDescription("Total number of guide queries sent to the model"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create guide_requests_total: %v", err)
		}

		m.GuideDurationSeconds, err = meter.Float64Histogram(
			"guide_duration_seconds",
			metric.WithDescription("Duration of guide queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create guide_duration_seconds: %v", err)
		}

		m.GuideErrorsTotal, err = meter.Int64Counter(
			"guide_errors_total",
			metric.WithDescription("Total number of failed model calls"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create guide_errors_total: %v", err)
		}

		m.GuideParseFailures, err = meter.Int64Counter(
			"guide_parse_failures_total",
			metric.WithDescription("Model answers discarded because they were not valid JSON"),
			metric.WithUnit("{response}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create guide_parse_failures_total: %v", err)
		}

		m.ExplorerSessionsActive, err = meter.Int64UpDownCounter(
			"explorer_sessions_active",
			metric.WithDescription("Number of open explorer sessions"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create explorer_sessions_active: %v", err)
		}

		m.ExplorerStaleResponses, err = meter.Int64Counter(
			"explorer_stale_responses_total",
			metric.WithDescription("Responses dropped because a newer request superseded them"),
			metric.WithUnit("{response}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create explorer_stale_responses_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global AppMetrics, initializing it on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
