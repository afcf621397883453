package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for remote attempts.
const (
	OutcomeOK          = "ok"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Metrics counts how store operations were served. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	remoteAttempts *prometheus.CounterVec
	localFallbacks *prometheus.CounterVec
	cacheErrors    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		remoteAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "installer",
			Subsystem: "store",
			Name:      "remote_attempts_total",
			Help:      "Remote backend calls made by entity stores, by outcome.",
		}, []string{"kind", "op", "outcome"}),
		localFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "installer",
			Subsystem: "store",
			Name:      "local_fallbacks_total",
			Help:      "Store operations served from the local cache only.",
		}, []string{"kind", "op"}),
		cacheErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "installer",
			Subsystem: "store",
			Name:      "cache_errors_total",
			Help:      "Local cache read/write failures, including corrupt slots.",
		}, []string{"kind", "op"}),
	}
	if reg != nil {
		reg.MustRegister(m.remoteAttempts, m.localFallbacks, m.cacheErrors)
	}
	return m
}

func (m *Metrics) RemoteAttempt(kind, op, outcome string) {
	if m == nil {
		return
	}
	m.remoteAttempts.WithLabelValues(kind, op, outcome).Inc()
}

func (m *Metrics) LocalFallback(kind, op string) {
	if m == nil {
		return
	}
	m.localFallbacks.WithLabelValues(kind, op).Inc()
}

func (m *Metrics) CacheError(kind, op string) {
	if m == nil {
		return
	}
	m.cacheErrors.WithLabelValues(kind, op).Inc()
}
