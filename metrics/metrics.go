// Package metrics provides Prometheus metrics for the audit API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seoaudit"

// Recorder holds the collectors registered for one server instance
type Recorder struct {
	gatherer prometheus.Gatherer

	// RequestsTotal counts HTTP requests.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration measures HTTP request latency.
	RequestDuration *prometheus.HistogramVec
	// AuditsTotal counts finished audits by outcome.
	AuditsTotal *prometheus.CounterVec
	// AuditDuration measures the full audit, all three outbound calls included.
	AuditDuration prometheus.Histogram
	// StepFailuresTotal counts failed audit steps by step and error kind.
	StepFailuresTotal *prometheus.CounterVec
	// Competitors observes how many competitor links a successful audit returned.
	Competitors prometheus.Histogram
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		AuditsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audits_total",
				Help:      "Total number of audits",
			},
			[]string{"status"},
		),
		AuditDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "audit_duration_seconds",
				Help:      "Duration of audits in seconds",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
			},
		),
		StepFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audit_step_failures_total",
				Help:      "Total number of failed audit steps",
			},
			[]string{"step", "kind"},
		),
		Competitors: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "competitors_returned",
				Help:      "Number of competitor links per successful audit",
				Buckets:   []float64{0, 1, 3, 5, 8, 10},
			},
		),
	}
}

// ObserveRequest records one HTTP request.
func (r *Recorder) ObserveRequest(method, path string, status int, duration time.Duration) {
	r.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveAudit records a finished audit.
func (r *Recorder) ObserveAudit(duration time.Duration, competitors int, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	r.AuditsTotal.WithLabelValues(status).Inc()
	r.AuditDuration.Observe(duration.Seconds())
	if err == nil {
		r.Competitors.Observe(float64(competitors))
	}
}

// ObserveStepFailure records the step that aborted an audit.
func (r *Recorder) ObserveStepFailure(step, kind string) {
	r.StepFailuresTotal.WithLabelValues(step, kind).Inc()
}

// Handler serves the registered metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
