package errortypes

import (
	"strconv"
	"strings"
)

// AggregateErrors reports several input problems at once, such as every malformed name=value
// argument given to the command line.
type AggregateErrors struct {
	Message string
	Errors  []error
}

// NewAggregateErrors builds a AggregateErrors struct.
func NewAggregateErrors(msg string, errs []error) AggregateErrors {
	return AggregateErrors{
		Message: msg,
		Errors:  errs,
	}
}

// Error lists the wrapped errors one per line, numbered from 1.
func (e AggregateErrors) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(e.Message)
	if len(e.Errors) == 1 {
		sb.WriteString(" (1 error):\n")
	} else {
		sb.WriteString(" (" + strconv.Itoa(len(e.Errors)) + " errors):\n")
	}
	for i, err := range e.Errors {
		sb.WriteString("  " + strconv.Itoa(i+1) + ": " + err.Error() + "\n")
	}
	return sb.String()
}

// Unwrap exposes the wrapped errors to errors.Is and errors.As.
func (e AggregateErrors) Unwrap() []error {
	return e.Errors
}
