// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
)

func TestUnderflowError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *UnderflowError
		contains []string
	}{
		{
			name:     "forward subtract",
			err:      &UnderflowError{Op: "sub", A: []big.Word{2}, B: []big.Word{5}},
			contains: []string{"sub:", "b is larger than a", "a: [2]", "b: [5]"},
		},
		{
			name:     "with reason",
			err:      &UnderflowError{Op: "subrev", A: []big.Word{1, 1}, B: []big.Word{0}, Reason: "a longer than b"},
			contains: []string{"subrev:", "(a longer than b)", "a: [1 1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q should contain %q", msg, want)
				}
			}
			if !errors.Is(tt.err, ErrUnderflow) {
				t.Error("errors.Is(err, ErrUnderflow) should be true")
			}
			wrapped := WrapError(tt.err, "evaluating job %d", 3)
			var uerr *UnderflowError
			if !errors.As(wrapped, &uerr) {
				t.Error("errors.As should find *UnderflowError through WrapError")
			}
		})
	}
}

func TestRecoverUnderflow(t *testing.T) {
	t.Parallel()

	t.Run("converts underflow panic", func(t *testing.T) {
		t.Parallel()
		run := func() (err error) {
			defer RecoverUnderflow(&err)
			panic(&UnderflowError{Op: "sub"})
		}
		err := run()
		if !errors.Is(err, ErrUnderflow) {
			t.Fatalf("expected underflow error, got %v", err)
		}
	})

	t.Run("no panic leaves error untouched", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("kept")
		run := func() (err error) {
			defer RecoverUnderflow(&err)
			return sentinel
		}
		if err := run(); err != sentinel {
			t.Fatalf("expected %v, got %v", sentinel, err)
		}
	})

	t.Run("re-raises foreign panics", func(t *testing.T) {
		t.Parallel()
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("expected re-raised %q, got %v", "boom", r)
			}
		}()
		func() {
			var err error
			defer RecoverUnderflow(&err)
			panic("boom")
		}()
	})
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid radix %d for flag %s", 99, "--radix"),
			expected: "invalid radix 99 for flag --radix",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestParseAndValidationError(t *testing.T) {
	t.Parallel()
	if got, want := (ParseError{Input: "12x", Radix: 10}).Error(), `invalid unsigned integer "12x" in base 10`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := (ValidationError{Field: "a", Message: "must not be negative"}).Error(), `validation error for "a": must not be negative`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to open batch",
			expectedMsg: "failed to open batch: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "batch timed out",
			expectedMsg: "batch timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("unexpected token"),
			format:      "line %d of %s",
			args:        []any{7, "jobs.txt"},
			expectedMsg: "line 7 of jobs.txt: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if result := IsContextError(tt.err); result != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"underflow", &UnderflowError{Op: "sub"}, ExitErrorUnderflow},
		{"wrapped underflow", fmt.Errorf("job 1: %w", &UnderflowError{Op: "sub"}), ExitErrorUnderflow},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"parse", ParseError{Input: "z", Radix: 10}, ExitErrorParse},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "b"}, ExitErrorConfig},
		{"generic", errors.New("other"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":        ExitSuccess,
		"ExitErrorGeneric":   ExitErrorGeneric,
		"ExitErrorUnderflow": ExitErrorUnderflow,
		"ExitErrorParse":     ExitErrorParse,
		"ExitErrorConfig":    ExitErrorConfig,
		"ExitErrorCanceled":  ExitErrorCanceled,
	}

	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
