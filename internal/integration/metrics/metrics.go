// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	AnalyticsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_cache_lookups_total",
			Help: "Analytics cache lookups by result",
		},
		[]string{"result"}, // hit, miss, error
	)

	GoalNotifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_notifications_total",
			Help: "Goal notifications emitted by kind",
		},
		[]string{"kind"},
	)

	DocumentWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_writes_total",
			Help: "Snapshot document writes by storage tier and status",
		},
		[]string{"tier", "status"},
	)
)

// TrackCacheLookup records an analytics cache lookup result.
func TrackCacheLookup(result string) {
	AnalyticsCacheLookups.WithLabelValues(result).Inc()
}

// TrackGoalNotification counts one emitted goal notification.
func TrackGoalNotification(kind string) {
	GoalNotifications.WithLabelValues(kind).Inc()
}

// TrackDocumentWrite counts one snapshot write for a storage tier.
func TrackDocumentWrite(tier string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	DocumentWrites.WithLabelValues(tier, status).Inc()
}
