package metrics

import (
	"github.com/stretchr/testify/mock"

	"github.com/edgee-cloud/didomi-component/consent"
)

// MetricsEngineMock is mock for the MetricsEngine interface
type MetricsEngineMock struct {
	mock.Mock
}

// RecordConsentVerdict mock
func (me *MetricsEngineMock) RecordConsentVerdict(verdict consent.Verdict) {
	me.Called(verdict)
}

// RecordConsentError mock
func (me *MetricsEngineMock) RecordConsentError(reason ErrorReason) {
	me.Called(reason)
}
