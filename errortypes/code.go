package errortypes

// Defines numeric codes for well-known errors.
const (
	UnknownErrorCode         = 999
	InvalidSettingsErrorCode = iota
	CookieNotFoundErrorCode
	InvalidCookieValueErrorCode
)

// Coder provides an error or warning code with severity.
type Coder interface {
	Code() int
	Severity() Severity
}

// ReadCode returns the error or warning code, or UnknownErrorCode if unavailable.
func ReadCode(err error) int {
	if e, ok := err.(Coder); ok {
		return e.Code()
	}
	return UnknownErrorCode
}

// CodeLabel returns a short, stable name for the error code carried by err. It is meant for
// metric labels and log fields.
func CodeLabel(err error) string {
	switch ReadCode(err) {
	case InvalidSettingsErrorCode:
		return "invalid_settings"
	case CookieNotFoundErrorCode:
		return "cookie_not_found"
	case InvalidCookieValueErrorCode:
		return "invalid_cookie_value"
	default:
		return "unknown"
	}
}
