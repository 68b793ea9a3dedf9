// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intent_classifications_total",
			Help: "Total number of intent classifications by winning strategy",
		},
		[]string{"strategy", "domain"},
	)

	EntitiesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_extracted_total",
			Help: "Total number of entities extracted by source",
		},
		[]string{"type", "source"},
	)

	PlansCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plans_created_total",
			Help: "Total number of plans created by source",
		},
		[]string{"source", "intent"},
	)

	TasksExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_tasks_executed_total",
			Help: "Total number of plan tasks executed by outcome",
		},
		[]string{"outcome"},
	)

	AIFallbackDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "ai_fallback_duration_seconds",
			Help: "Duration of AI proxy fallback calls in seconds",
		},
		[]string{"caller"},
	)

	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamification_xp_awarded_total",
			Help: "Total XP granted by reward action",
		},
		[]string{"action"},
	)

	SessionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "conversation_sessions_active",
			Help: "Number of live conversation sessions per backend",
		},
		[]string{"backend"},
	)
)
