package prometheusmetrics

import (
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/edgee-cloud/didomi-component/config"
	"github.com/edgee-cloud/didomi-component/consent"
	"github.com/edgee-cloud/didomi-component/metrics"
)

// Metrics defines the Prometheus metrics backing the MetricsEngine implementation.
type Metrics struct {
	Registry *prometheus.Registry

	consentVerdicts *prometheus.CounterVec
	consentErrors   *prometheus.CounterVec
}

const (
	reasonLabel  = "reason"
	verdictLabel = "verdict"
)

// NewMetrics initializes a new Prometheus metrics instance with preloaded label values.
func NewMetrics(cfg config.PrometheusMetrics) *Metrics {
	metrics := Metrics{}
	metrics.Registry = prometheus.NewRegistry()

	metrics.consentVerdicts = newCounter(cfg, metrics.Registry,
		"consent_verdicts",
		"Count of consent verdicts computed from the Didomi cookie labeled by verdict.",
		[]string{verdictLabel})

	metrics.consentErrors = newCounter(cfg, metrics.Registry,
		"consent_errors",
		"Count of requests whose verdict degraded to pending labeled by reason.",
		[]string{reasonLabel})

	preloadLabelValues(&metrics)

	return &metrics
}

func newCounter(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounterVec(opts, labels)
	registry.MustRegister(counter)
	return counter
}

// preloadLabelValues makes every series visible at zero before the first request.
func preloadLabelValues(m *Metrics) {
	for _, v := range verdictsAsString() {
		m.consentVerdicts.WithLabelValues(v)
	}
	for _, r := range errorReasonsAsString() {
		m.consentErrors.WithLabelValues(r)
	}
}

func (m *Metrics) RecordConsentVerdict(verdict consent.Verdict) {
	m.consentVerdicts.With(prometheus.Labels{
		verdictLabel: verdict.String(),
	}).Inc()
}

// RecordConsentError counts reasons outside metrics.ErrorReasons as unknown.
func (m *Metrics) RecordConsentError(reason metrics.ErrorReason) {
	if !slices.Contains(metrics.ErrorReasons(), reason) {
		reason = metrics.ErrorReasonUnknown
	}
	m.consentErrors.With(prometheus.Labels{
		reasonLabel: string(reason),
	}).Inc()
}
