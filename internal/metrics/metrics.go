package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lensgate_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "lensgate_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"path"},
	)

	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lensgate_upstream_calls_total",
			Help: "Total number of upstream API calls by service and outcome",
		},
		[]string{"service", "outcome"},
	)

	UpstreamCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "lensgate_upstream_call_duration_seconds",
			Help: "Duration of upstream API calls in seconds",
		},
		[]string{"service"},
	)
)

// ObserveUpstream records one upstream call outcome.
func ObserveUpstream(service string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	UpstreamCallsTotal.WithLabelValues(service, outcome).Inc()
	UpstreamCallDuration.WithLabelValues(service).Observe(d.Seconds())
}
