// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interest_submissions_started_total",
			Help: "Total number of interest submissions begun per surface",
		},
		[]string{"surface"},
	)

	SubmissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interest_submissions_completed_total",
			Help: "Total number of interest submissions by surface and outcome",
		},
		[]string{"surface", "outcome"},
	)

	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "interest_submission_duration_seconds",
			Help: "Duration of notification attempts in seconds",
		},
		[]string{"surface"},
	)

	FallbacksResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interest_fallbacks_resolved_total",
			Help: "Total number of manual-contact fallbacks produced",
		},
		[]string{"surface"},
	)

	SectionFocuses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interest_section_focuses_total",
			Help: "Total number of scroll-highlight focus requests",
		},
		[]string{"section", "found"},
	)
)
