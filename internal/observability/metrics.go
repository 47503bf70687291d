// Package observability defines the Prometheus collectors for the Tourist
// Trips API. Collectors are registered with the default registry via promauto
// and exposed by the /metrics endpoint wired in main.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TripsInStore tracks the current number of trip records held in memory.
	// The store updates it on seed, create, and delete.
	TripsInStore = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tourist_trips",
		Name:      "trips_in_store",
		Help:      "Number of trip records currently in the in-memory store",
	})

	// HTTPRequestsTotal counts handled requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tourist_trips",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration records request latency by method, route, and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tourist_trips",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
