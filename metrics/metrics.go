// Package metrics holds the Prometheus collectors for lead requests.
//
// All collectors are registered against the default registry. In local mode
// they are served on GET /metrics; inside Lambda nothing scrapes them and the
// structured log line per invocation is the source of truth.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stages a request can stop at
const (
	StageParameters      = "parameters"
	StageEmptyParameters = "empty_parameters"
	StageAuthentication  = "authentication"
	StageLookup          = "lookup"
)

var (
	// LeadRequestsTotal counts handled requests by result and the stage that
	// decided it. Successful requests are always labelled with StageLookup.
	LeadRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_requests_total",
			Help: "Total number of lead requests handled, by result and deciding stage.",
		},
		[]string{"result", "stage"},
	)

	// AuditWriteFailuresTotal counts request records that could not be stored
	AuditWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_audit_write_failures_total",
			Help: "Total number of API request records that failed to be written.",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route pattern.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)
