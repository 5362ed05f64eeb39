package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMetricsNamespace prefixes every ledger metric
const DefaultMetricsNamespace = "ledger"

// LedgerMetrics holds the Prometheus instruments of the commission ledger.
// A nil *LedgerMetrics is valid and records nothing.
type LedgerMetrics struct {
	registry *prometheus.Registry

	transitions     *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	events          *prometheus.CounterVec
	dedupSkipped    *prometheus.CounterVec
	sinkSubmissions *prometheus.CounterVec
	confirmRuns     prometheus.Histogram
	confirmResults  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewLedgerMetrics creates the ledger instruments on a private registry that also
// carries the Go runtime and process collectors.
func NewLedgerMetrics(namespace string) *LedgerMetrics {
	if namespace == "" {
		namespace = DefaultMetricsNamespace
	}
	registry := prometheus.NewRegistry()
	m := &LedgerMetrics{
		registry: registry,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Successful guarded status transitions.",
		}, []string{"entity_type", "action"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transition_rejections_total",
			Help:      "Rejected guarded status transitions by error code.",
		}, []string{"entity_type", "action", "code"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Inbound events by type and handling outcome.",
		}, []string{"event_type", "outcome"}),
		dedupSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dedup_skipped_total",
			Help:      "Redelivered events suppressed by the dedup window.",
		}, []string{"event_type"}),
		sinkSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_submissions_total",
			Help:      "Voucher submissions to the external sink by kind and result.",
		}, []string{"kind", "status"}),
		confirmRuns: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "confirm_run_duration_seconds",
			Help:      "Duration of one eligible-commission confirm run.",
			Buckets:   prometheus.DefBuckets,
		}),
		confirmResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirm_results_total",
			Help:      "Commissions handled by confirm runs by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status class.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transitions,
		m.rejections,
		m.events,
		m.dedupSkipped,
		m.sinkSubmissions,
		m.confirmRuns,
		m.confirmResults,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry returns the registry the instruments are registered on
func (m *LedgerMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *LedgerMetrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordTransition counts one successful transition
func (m *LedgerMetrics) RecordTransition(entityType, action string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(entityType, action).Inc()
}

// RecordRejection counts one rejected transition
func (m *LedgerMetrics) RecordRejection(entityType, action, code string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(entityType, action, code).Inc()
}

// RecordEvent counts one handled inbound event
func (m *LedgerMetrics) RecordEvent(eventType, outcome string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(eventType, outcome).Inc()
}

// RecordDedupSkip counts one event suppressed as a redelivery
func (m *LedgerMetrics) RecordDedupSkip(eventType string) {
	if m == nil {
		return
	}
	m.dedupSkipped.WithLabelValues(eventType).Inc()
}

// RecordSinkSubmission counts one voucher submission
func (m *LedgerMetrics) RecordSinkSubmission(kind, status string) {
	if m == nil {
		return
	}
	m.sinkSubmissions.WithLabelValues(kind, status).Inc()
}

// ObserveConfirmRun records one confirm run and its per-commission results
func (m *LedgerMetrics) ObserveConfirmRun(elapsed time.Duration, confirmed, notYetEligible, failed int) {
	if m == nil {
		return
	}
	m.confirmRuns.Observe(elapsed.Seconds())
	m.confirmResults.WithLabelValues("confirmed").Add(float64(confirmed))
	m.confirmResults.WithLabelValues("not_yet_eligible").Add(float64(notYetEligible))
	m.confirmResults.WithLabelValues("failed").Add(float64(failed))
}

// ObserveHTTPRequest records one served request. status is the status class, e.g. "2xx".
func (m *LedgerMetrics) ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
