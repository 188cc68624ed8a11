package apperrors

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error.
	ExitErrorUnderflow = 2   // Indicates a strict subtraction underflowed.
	ExitErrorParse     = 3   // Indicates an operand could not be parsed.
	ExitErrorConfig    = 4   // Indicates a configuration error.
	ExitErrorCanceled  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrUnderflow is the sentinel matched by every UnderflowError through errors.Is.
var ErrUnderflow = errors.New("magnitude underflow")

// UnderflowError reports that a strict unsigned subtraction would have produced
// a negative result. The strict subtractors raise it as a panic value: it
// always means the caller did not establish a >= b beforehand.
type UnderflowError struct {
	// Op names the operation that underflowed (e.g. "sub", "subrev").
	Op string
	// A is the minuend as observed when the violation was detected.
	A []big.Word
	// B is the subtrahend.
	B []big.Word
	// Reason optionally narrows down which precondition failed.
	Reason string
}

// Error returns a message naming the operation and both operands.
func (e *UnderflowError) Error() string {
	msg := fmt.Sprintf("%s: cannot subtract b from a because b is larger than a", e.Op)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return fmt.Sprintf("%s\na: %v\nb: %v", msg, e.A, e.B)
}

// Is reports whether target is ErrUnderflow.
func (e *UnderflowError) Is(target error) bool { return target == ErrUnderflow }

// RecoverUnderflow converts an in-flight *UnderflowError panic into an error
// stored in *errp. Any other panic value is re-raised unchanged. It must be
// called directly via defer:
//
//	defer apperrors.RecoverUnderflow(&err)
func RecoverUnderflow(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if uerr, ok := r.(*UnderflowError); ok {
		*errp = uerr
		return
	}
	panic(r)
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ParseError reports an operand that is not a valid unsigned integer in the
// requested radix.
type ParseError struct {
	// Input is the rejected text.
	Input string
	// Radix is the base the text was parsed in.
	Radix int
}

// Error returns a formatted message describing the parse failure.
func (e ParseError) Error() string {
	return fmt.Sprintf("invalid unsigned integer %q in base %d", e.Input, e.Radix)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	var (
		cfgErr   ConfigError
		parseErr ParseError
		valErr   ValidationError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUnderflow):
		return ExitErrorUnderflow
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &parseErr):
		return ExitErrorParse
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
