package metrics

import (
	"github.com/edgee-cloud/didomi-component/consent"
)

// ErrorReason labels why a verdict degraded to pending.
type ErrorReason string

const (
	ErrorReasonInvalidSettings    ErrorReason = "invalid_settings"
	ErrorReasonCookieNotFound     ErrorReason = "cookie_not_found"
	ErrorReasonInvalidCookieValue ErrorReason = "invalid_cookie_value"
	ErrorReasonUnknown            ErrorReason = "unknown"
)

// ErrorReasons returns all possible error reasons.
func ErrorReasons() []ErrorReason {
	return []ErrorReason{
		ErrorReasonInvalidSettings,
		ErrorReasonCookieNotFound,
		ErrorReasonInvalidCookieValue,
		ErrorReasonUnknown,
	}
}

// MetricsEngine is a generic interface to record consent mapping metrics.
//
// RecordConsentVerdict fires exactly once per mapped request. RecordConsentError fires at most
// once per request, before the pending verdict it caused is recorded.
type MetricsEngine interface {
	RecordConsentVerdict(verdict consent.Verdict)
	RecordConsentError(reason ErrorReason)
}
