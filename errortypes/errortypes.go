package errortypes

// InvalidSettings should be used when the caller-supplied settings cannot be resolved into a
// usable configuration.
//
// These errors never reach the host. They are logged and the verdict degrades to pending.
type InvalidSettings struct {
	Message string
	Cause   error
}

func (err *InvalidSettings) Error() string {
	return err.Message
}

func (err *InvalidSettings) Unwrap() error {
	return err.Cause
}

func (err *InvalidSettings) Code() int {
	return InvalidSettingsErrorCode
}

func (err *InvalidSettings) Severity() Severity {
	return SeverityWarning
}

// CookieNotFound should be used when the consent cookie is absent from the request cookies.
//
// An absent cookie is the normal state for a visitor who never saw the consent notice, so this
// is not an actionable item for the host.
type CookieNotFound struct {
	Message string
}

func (err *CookieNotFound) Error() string {
	return err.Message
}

func (err *CookieNotFound) Code() int {
	return CookieNotFoundErrorCode
}

func (err *CookieNotFound) Severity() Severity {
	return SeverityWarning
}

// InvalidCookieValue should be used when the consent cookie is present but could not be decoded.
// It covers percent-decoding, base64 decoding and structural parse failures alike.
type InvalidCookieValue struct {
	Message string
	Cause   error
}

func (err *InvalidCookieValue) Error() string {
	return err.Message
}

func (err *InvalidCookieValue) Unwrap() error {
	return err.Cause
}

func (err *InvalidCookieValue) Code() int {
	return InvalidCookieValueErrorCode
}

func (err *InvalidCookieValue) Severity() Severity {
	return SeverityWarning
}
