package logger

import "sync/atomic"

var logger atomic.Value

func init() {
	logger.Store(holder{NewGlogLogger()})
}

// holder keeps the stored concrete type stable for atomic.Value.
type holder struct {
	Logger
}

func current() Logger {
	return logger.Load().(holder).Logger
}

// SetLogger replaces the package logger and returns a func restoring the previous one.
func SetLogger(l Logger) (restore func()) {
	prev := logger.Swap(holder{l}).(holder)
	return func() {
		logger.Store(prev)
	}
}

// Debug level logging
func Debugf(msg string, args ...any) {
	current().Debugf(msg, args...)
}

// Info level logging
func Infof(msg string, args ...any) {
	current().Infof(msg, args...)
}

// Warn level logging
func Warnf(msg string, args ...any) {
	current().Warnf(msg, args...)
}

// Warn level logging with key/value attributes.
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Error level logging
func Errorf(msg string, args ...any) {
	current().Errorf(msg, args...)
}

// Fatal level logging and terminates the program execution.
func Fatalf(msg string, args ...any) {
	current().Fatalf(msg, args...)
}
