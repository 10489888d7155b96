package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal served requests by route and status code
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrapquote_http_requests_total",
			Help: "Total number of HTTP requests served.",
		},
		[]string{"route", "method", "code"},
	)

	// RequestLatency latency of served requests
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scrapquote_http_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// LookupsTotal vehicle lookups by outcome: ok, no_data, field_not_found, invalid_value, upstream
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrapquote_vehicle_lookups_total",
			Help: "Total number of curb weight lookups.",
		},
		[]string{"outcome"},
	)

	// UpstreamLatency latency of vPIC calls
	UpstreamLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scrapquote_vpic_request_duration_seconds",
			Help:    "Latency of vehicle specification lookups.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// DocumentsSaved stored pickup requests by status
	DocumentsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrapquote_documents_saved_total",
			Help: "Total number of pickup requests written to the document store.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestLatency)
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(UpstreamLatency)
	prometheus.MustRegister(DocumentsSaved)
}
