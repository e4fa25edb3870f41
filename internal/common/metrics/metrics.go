// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_calculations_completed_total",
			Help: "Total number of calculations completed per project type",
		},
		[]string{"project_type"},
	)

	CalculationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_calculations_failed_total",
			Help: "Total number of calculations failed per project type",
		},
		[]string{"project_type", "error_code"},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "engine_calculation_duration_seconds",
			Help: "Duration of a single calculation in seconds",
		},
		[]string{"project_type"},
	)

	TemplatesRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_templates_registered_total",
			Help: "Total number of user-defined template registrations",
		},
		[]string{"outcome"},
	)

	ScenariosSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scenarios_saved_total",
			Help: "Total number of scenario snapshots saved",
		},
	)
)
