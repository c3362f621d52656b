// Package observability holds the engine's Prometheus instruments.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aeron_option_generations_total",
		Help: "Recovery option generations by disruption category and source.",
	}, []string{"category", "source"})

	FallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aeron_source_fallbacks_total",
		Help: "Times the resolver fell back past an unhealthy option source.",
	})

	ExpansionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aeron_plan_expansions_total",
		Help: "Plan expansions by resolved option family.",
	}, []string{"family"})

	ViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aeron_validation_violations_total",
		Help: "Violations reported by validation passes, by type.",
	}, []string{"type"})

	RecalculationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aeron_recalculations_total",
		Help: "What-if recalculation requests served.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aeron_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)
