// Package metrics defines the Prometheus metrics of the back-office client.
//
// Metric names carry the yukam_ prefix; counters end in _total and
// histograms in _seconds. A nil *Metrics is valid and records nothing, so
// components take one unconditionally.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeRejected     = "rejected"
	OutcomeUnavailable  = "unavailable"
	OutcomeUpstream     = "upstream_error"
	OutcomeInvalid      = "invalid_identity"
	OutcomeSuperseded   = "superseded"
	OutcomeOtherFailure = "error"
)

// Admission decisions.
const (
	DecisionAllow    = "allow"
	DecisionRedirect = "redirect"
	DecisionDeny     = "deny"
)

type Metrics struct {
	LoginAttemptsTotal   *prometheus.CounterVec
	LoginDurationSeconds prometheus.Histogram
	AdmissionsTotal      *prometheus.CounterVec
	SessionResetsTotal   *prometheus.CounterVec
	RemoteRequestsTotal  *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them with reg. A fresh
// prometheus.NewRegistry() keeps tests independent of the default one.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		LoginAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yukam_login_attempts_total",
				Help: "Login attempts by outcome.",
			},
			[]string{"outcome"},
		),
		LoginDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "yukam_login_duration_seconds",
				Help:    "Duration of the identity service login call.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		AdmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yukam_route_admissions_total",
				Help: "Route admission decisions by destination path and decision.",
			},
			[]string{"path", "decision"},
		),
		SessionResetsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yukam_session_resets_total",
				Help: "Session clears by reason.",
			},
			[]string{"reason"},
		),
		RemoteRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yukam_remote_requests_total",
				Help: "Customer-service operations by operation and result.",
			},
			[]string{"operation", "result"},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.LoginAttemptsTotal,
		m.LoginDurationSeconds,
		m.AdmissionsTotal,
		m.SessionResetsTotal,
		m.RemoteRequestsTotal,
	)
	return m
}

func (m *Metrics) ObserveLogin(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
	m.LoginDurationSeconds.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveAdmission(path, decision string) {
	if m == nil {
		return
	}
	m.AdmissionsTotal.WithLabelValues(path, decision).Inc()
}

func (m *Metrics) ObserveSessionReset(reason string) {
	if m == nil {
		return
	}
	m.SessionResetsTotal.WithLabelValues(reason).Inc()
}

// ObserveRemote counts one customer-service call; err == nil is "ok".
func (m *Metrics) ObserveRemote(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.RemoteRequestsTotal.WithLabelValues(operation, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
