package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/golang/glog"
	slogglog "github.com/searKing/golang/go/log/slog"
)

// GlogLogger implements the Logger interface for logging using the glog library with configurable call depth.
// Structured calls go through a slog.Logger that uses a glog handler, so both styles share one format.
type GlogLogger struct {
	depth      int
	slogLogger *slog.Logger
}

// Debugf logs a debug-level message with the specified format and arguments.
func (logger *GlogLogger) Debugf(msg string, args ...any) {
	glog.InfoDepthf(logger.depth, msg, args...)
}

// Infof logs an informational-level message with the specified format and optional arguments.
func (logger *GlogLogger) Infof(msg string, args ...any) {
	glog.InfoDepthf(logger.depth, msg, args...)
}

// Warnf logs a warning-level message with the specified format and arguments.
func (logger *GlogLogger) Warnf(msg string, args ...any) {
	glog.WarningDepthf(logger.depth, msg, args...)
}

// Errorf logs an error-level message with the specified format and arguments.
func (logger *GlogLogger) Errorf(msg string, args ...any) {
	glog.ErrorDepthf(logger.depth, msg, args...)
}

// Fatalf logs a fatal-level message with the specified format and arguments, then exits the application.
func (logger *GlogLogger) Fatalf(msg string, args ...any) {
	glog.FatalDepthf(logger.depth, msg, args...)
}

// Warn logs at Warn level using slog
func (logger *GlogLogger) Warn(msg string, args ...any) {
	logger.slogLogger.WarnContext(context.Background(), msg, args...)
}

func NewGlogLogger() Logger {
	handler := slogglog.NewGlogHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	return &GlogLogger{
		depth:      2,
		slogLogger: slog.New(handler),
	}
}
