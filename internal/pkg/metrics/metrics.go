package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "examtable"

var (
	GenerationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_runs_total",
		Help:      "Timetable generation runs, by whether the proposal was persisted.",
	}, []string{"persisted"})

	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Exam sessions proposed by the generator.",
	})

	UnscheduledModules = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unscheduled_modules_total",
		Help:      "Modules the generator could not place inside the requested window.",
	})

	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Wall time of a generation run including persistence and the self-check.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	})

	DetectionRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detection_runs_total",
		Help:      "Conflict detection runs.",
	})

	DegradedCategories = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "degraded_categories_total",
		Help:      "Conflict categories that fell back to an empty list.",
	}, []string{"category"})
)

// ObserveGeneration records one finished generation run.
func ObserveGeneration(persisted bool, created, unscheduled int, elapsed time.Duration) {
	GenerationRuns.WithLabelValues(strconv.FormatBool(persisted)).Inc()
	SessionsCreated.Add(float64(created))
	UnscheduledModules.Add(float64(unscheduled))
	GenerationDuration.Observe(elapsed.Seconds())
}

// CategoryDegraded is meant to be registered as a detector hook.
func CategoryDegraded(category string) {
	DegradedCategories.WithLabelValues(category).Inc()
}
