package metrics

import (
	"fmt"

	gometrics "github.com/rcrowley/go-metrics"

	"github.com/edgee-cloud/didomi-component/consent"
)

// Metrics is the go-metrics backed MetricsEngine. Counter names are dot separated so they
// nest when flushed to a reporter.
type Metrics struct {
	MetricsRegistry gometrics.Registry

	verdictCounters map[consent.Verdict]gometrics.Counter
	errorCounters   map[ErrorReason]gometrics.Counter
}

// NewMetrics registers every counter up front so the maps are only ever read afterwards.
func NewMetrics(registry gometrics.Registry) *Metrics {
	m := &Metrics{
		MetricsRegistry: registry,
		verdictCounters: make(map[consent.Verdict]gometrics.Counter),
		errorCounters:   make(map[ErrorReason]gometrics.Counter),
	}

	for _, v := range consent.Verdicts() {
		m.verdictCounters[v] = gometrics.GetOrRegisterCounter(fmt.Sprintf("consent.verdict.%s", v), registry)
	}
	for _, r := range ErrorReasons() {
		m.errorCounters[r] = gometrics.GetOrRegisterCounter(fmt.Sprintf("consent.error.%s", r), registry)
	}
	return m
}

func (m *Metrics) RecordConsentVerdict(verdict consent.Verdict) {
	if c, ok := m.verdictCounters[verdict]; ok {
		c.Inc(1)
	}
}

func (m *Metrics) RecordConsentError(reason ErrorReason) {
	c, ok := m.errorCounters[reason]
	if !ok {
		c = m.errorCounters[ErrorReasonUnknown]
	}
	c.Inc(1)
}
