package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "omdb_upstream_requests_total",
			Help: "Count of OMDb API requests by lookup mode",
		},
		[]string{"mode", "status"},
	)
	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "omdb_upstream_request_duration_seconds",
			Help:    "Time taken by OMDb API requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"mode"},
	)
	CategoryFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_category_fallbacks_total",
			Help: "Count of category requests degraded to the popular catalog",
		},
		[]string{"category"},
	)
)

func Init() {
	prometheus.MustRegister(
		UpstreamRequests,
		UpstreamDuration,
		CategoryFallbacks,
	)
}
