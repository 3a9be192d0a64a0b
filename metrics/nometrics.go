package metrics

import "github.com/edgee-cloud/didomi-component/consent"

// NilMetricsEngine implements MetricsEngine and discards everything. It is the default when no
// metrics backend is configured.
type NilMetricsEngine struct{}

func NewNilMetricsEngine() *NilMetricsEngine {
	return &NilMetricsEngine{}
}

// RecordConsentVerdict as a noop
func (me *NilMetricsEngine) RecordConsentVerdict(verdict consent.Verdict) {}

// RecordConsentError as a noop
func (me *NilMetricsEngine) RecordConsentError(reason ErrorReason) {}
