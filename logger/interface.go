package logger

// Logger is the diagnostic sink used across the module.
type Logger interface {
	// Debug level logging
	Debugf(msg string, args ...any)

	// Info level logging
	Infof(msg string, args ...any)

	// Warn level logging
	Warnf(msg string, args ...any)

	// Error level logging
	Errorf(msg string, args ...any)

	// Fatal level logging
	Fatalf(msg string, args ...any)

	// Warn logs a message with structured key/value attributes.
	Warn(msg string, args ...any)
}
