// Package observability holds the Prometheus collectors shared by the components.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	stravaFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "strideboard",
		Subsystem: "strava",
		Name:      "fetches_total",
		Help:      "Activity list requests sent to Strava, by outcome.",
	}, []string{"outcome"})
	stravaFetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "strideboard",
		Subsystem: "strava",
		Name:      "fetch_duration_seconds",
		Help:      "Latency of activity list requests sent to Strava.",
		Buckets:   prometheus.DefBuckets,
	})
	stravaActivitiesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "strideboard",
		Subsystem: "strava",
		Name:      "activities_fetched_total",
		Help:      "Activity records decoded from Strava responses.",
	})
	telemetryEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "strideboard",
		Subsystem: "telemetry",
		Name:      "events_sent_total",
		Help:      "Telemetry events posted to the event sink, by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(stravaFetches, stravaFetchDuration, stravaActivitiesFetched, telemetryEvents)
}

// RecordStravaFetch counts one Strava request and observes its latency.
func RecordStravaFetch(outcome string, elapsed time.Duration, activities int) {
	stravaFetches.WithLabelValues(outcome).Inc()
	stravaFetchDuration.Observe(elapsed.Seconds())
	if activities > 0 {
		stravaActivitiesFetched.Add(float64(activities))
	}
}

// RecordTelemetryEvent counts one event delivery attempt.
func RecordTelemetryEvent(outcome string) {
	telemetryEvents.WithLabelValues(outcome).Inc()
}
