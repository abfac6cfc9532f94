// Package metrics registers the engine's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memberpulse_assessments_created_total",
		Help: "Total risk assessments persisted, labelled by tier.",
	}, []string{"tier"})

	TierMismatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memberpulse_tier_mismatches_total",
		Help: "Times the scorer's tier label disagreed with the threshold-derived tier.",
	})

	ScoringFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memberpulse_scoring_failures_total",
		Help: "Failed calls to the external risk-scoring service.",
	})

	AlertsRaised = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memberpulse_alerts_raised_total",
		Help: "Alerts created by the generator, labelled by condition and severity.",
	}, []string{"condition", "severity"})

	AlertsSuppressed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memberpulse_alerts_suppressed_total",
		Help: "Alert creations skipped because a pending alert already covers the condition.",
	}, []string{"condition"})

	PaymentsMarkedOverdue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memberpulse_payments_marked_overdue_total",
		Help: "Payment records transitioned pending to overdue during alert generation.",
	})

	GeneratorErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memberpulse_alert_generator_errors_total",
		Help: "Per-member failures isolated during an alert generation run.",
	})

	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "memberpulse_model_evaluation_duration_seconds",
		Help:    "Wall time of one model evaluation run.",
		Buckets: prometheus.DefBuckets,
	})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memberpulse_events_dropped_total",
		Help: "Domain events dropped because the bus buffer was full.",
	})
)
