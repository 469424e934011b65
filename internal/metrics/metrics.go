// Package metrics defines Prometheus metrics for the HR audit service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hris_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hris_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	SalaryChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hris_salary_changes_total",
			Help: "Committed salary changes, each with exactly one audit entry",
		},
		[]string{"reason"},
	)

	SalaryNoopUpdatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hris_salary_noop_updates_total",
			Help: "Salary updates that kept the current value and wrote no audit entry",
		},
	)

	SalaryChangeFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hris_salary_change_failures_total",
			Help: "Salary change transactions rolled back by failure kind",
		},
		[]string{"kind"},
	)

	OutboxPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hris_outbox_published_total",
			Help: "Outbox events handed to Kafka by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal,
		SalaryChangesTotal, SalaryNoopUpdatesTotal, SalaryChangeFailuresTotal,
		OutboxPublishedTotal,
	)
}
