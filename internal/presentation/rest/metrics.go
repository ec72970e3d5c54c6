package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "credit_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credit_loan_decisions_total",
		Help: "Loan decisions by operation and outcome.",
	}, []string{"operation", "outcome"})
)

func recordDecision(operation string, approved bool) {
	outcome := "rejected"
	if approved {
		outcome = "approved"
	}
	decisionsTotal.WithLabelValues(operation, outcome).Inc()
}
