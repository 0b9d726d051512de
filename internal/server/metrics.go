package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/muurk/tipsplit/internal/form"
)

const metricsNamespace = "tipsplit"

// Metrics holds the server's Prometheus collectors. Each Server owns its own
// registry so tests can build several servers in one process.
type Metrics struct {
	registry *prometheus.Registry

	events   *prometheus.CounterVec
	rejected *prometheus.CounterVec
	sessions prometheus.Gauge
	resets   prometheus.Counter
}

// NewMetrics creates and registers the collectors
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "form_events_total",
			Help:      "Form events received from browser sessions, by type.",
		}, []string{"type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejected_inputs_total",
			Help:      "Field edits dropped by the input validator, by field.",
		}, []string{"field"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_sessions",
			Help:      "Open browser form sessions.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "resets_total",
			Help:      "Form resets.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.events,
		m.rejected,
		m.sessions,
		m.resets,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Observe records one applied event
func (m *Metrics) Observe(e form.Event, accepted bool) {
	m.events.WithLabelValues(string(e.Type)).Inc()
	if e.Type == form.EventReset {
		m.resets.Inc()
	}
	if !accepted {
		m.rejected.WithLabelValues(string(e.Type)).Inc()
	}
}

// SessionOpened increments the active session gauge
func (m *Metrics) SessionOpened() { m.sessions.Inc() }

// SessionClosed decrements the active session gauge
func (m *Metrics) SessionClosed() { m.sessions.Dec() }
