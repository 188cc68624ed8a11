// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (underflow,
// configuration, parsing) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapped types support errors.Is() and errors.As().
//
// UnderflowError is special: the strict subtraction kernels panic with it
// instead of returning it. Only the outermost layers (batch evaluation and
// the CLI) recover it with RecoverUnderflow.
package apperrors
