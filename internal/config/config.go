// Package config parses the magsub command line and environment into an
// AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	apperrors "github.com/agbru/magsub/internal/errors"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "MAGSUB_"

// Supported operations.
const (
	OpSign   = "sign"   // signed a - b, never fails
	OpSub    = "sub"    // strict a -= b
	OpSubRev = "subrev" // strict b = a - b into b's storage
	OpScalar = "scalar" // strict a -= b with single-digit b
)

// Ops lists the accepted values of --op.
var Ops = []string{OpSign, OpSub, OpSubRev, OpScalar}

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// A and B are the operands of a single subtraction.
	A, B string
	// Op selects the kernel, one of Ops.
	Op string
	// Radix is the base operands are parsed and printed in.
	Radix int
	// BatchFile is a job file path, "-" for stdin, or empty for single mode.
	BatchFile string
	// Workers bounds concurrent job evaluation in batch mode. Zero selects
	// a hardware-based default.
	Workers int
	// MetricsFile, when set, receives a Prometheus text-format snapshot.
	MetricsFile string
	Verbose     bool
	Quiet       bool
	JSONLogs    bool
	NoColor     bool
}

// ParseConfig parses args (without the program name) and applies
// environment overrides for any flag not set explicitly.
// Positional arguments supply A and B when -a/-b are absent.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [a b]\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	cfg := AppConfig{}
	fs.StringVar(&cfg.A, "a", "", "Minuend (unsigned integer).")
	fs.StringVar(&cfg.B, "b", "", "Subtrahend (unsigned integer).")
	fs.StringVar(&cfg.Op, "op", OpSign, "Operation: "+strings.Join(Ops, ", ")+".")
	fs.IntVar(&cfg.Radix, "radix", 10, "Base for operands and results (2-62).")
	fs.StringVar(&cfg.BatchFile, "batch", "", "Evaluate 'a b [op]' lines from a file ('-' for stdin).")
	fs.IntVar(&cfg.Workers, "workers", 0, "Concurrent jobs in batch mode (0 = auto).")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Print only results (shorthand).")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only results.")
	fs.BoolVar(&cfg.JSONLogs, "json-logs", false, "Emit logs as JSON.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output (also honors NO_COLOR).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if rest := fs.Args(); len(rest) > 0 {
		if len(rest) != 2 || cfg.A != "" || cfg.B != "" {
			return AppConfig{}, apperrors.NewConfigError("expected exactly two positional operands, got %d", len(rest))
		}
		cfg.A, cfg.B = rest[0], rest[1]
	}

	applyEnvOverrides(&cfg, fs)
	cfg = ApplyAdaptiveDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate() error {
	if !slices.Contains(Ops, c.Op) {
		return apperrors.NewConfigError("unknown operation %q (valid: %s)", c.Op, strings.Join(Ops, ", "))
	}
	if c.Radix < 2 || c.Radix > 62 {
		return apperrors.NewConfigError("radix must be between 2 and 62, got %d", c.Radix)
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("workers must be positive, got %d", c.Workers)
	}
	if c.BatchFile == "" && (c.A == "" || c.B == "") {
		return apperrors.NewConfigError("two operands are required unless --batch is given")
	}
	if c.BatchFile != "" && (c.A != "" || c.B != "") {
		return apperrors.NewConfigError("operands cannot be combined with --batch")
	}
	return nil
}
