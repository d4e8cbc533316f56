package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/salat/internal/logger"
)

var (
	// ErrStoreUnavailable is returned by every ledger operation while the
	// store has not been opened. Recoverable by Load/Init and retrying.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrProviderUnavailable wraps any failure fetching daily boundaries
	// from the timing provider.
	ErrProviderUnavailable = errors.New("prayer time provider unavailable")
)

// ParseError reports a malformed boundary time, date or slot name.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError is a shorthand for &ParseError{...}.
func NewParseError(field, value string, err error) *ParseError {
	return &ParseError{Field: field, Value: value, Err: err}
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Hint returns a short user-facing explanation for the error taxonomy, or
// the empty string for anything else.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrStoreUnavailable):
		return "storage is not open, run 'salat init' first"
	case errors.Is(err, ErrProviderUnavailable):
		return "prayer times are not available yet"
	case IsParseError(err):
		return "data not ready"
	}
	return ""
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	if hint := Hint(err); hint != "" {
		return fmt.Sprintf("Error: %v (%s)", err, hint)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
