package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/magsub/internal/cli"
	"github.com/agbru/magsub/internal/config"
	apperrors "github.com/agbru/magsub/internal/errors"
	"github.com/agbru/magsub/internal/logging"
	"github.com/agbru/magsub/internal/metrics"
	"github.com/agbru/magsub/internal/ui"
)

// Application represents the magsub application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Metrics   *metrics.Metrics
	ErrWriter io.Writer
	// Stdin is read in batch mode when the batch file is "-".
	Stdin io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithStdin sets the reader used for "--batch -".
func WithStdin(r io.Reader) AppOption {
	return func(a *Application) { a.Stdin = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "magsub"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		// flag already reported its own parse errors.
		var cfgErr apperrors.ConfigError
		if errors.As(err, &cfgErr) {
			cli.DisplayError(errWriter, err)
		}
		return nil, err
	}

	app := &Application{
		Config:    cfg,
		Metrics:   metrics.NewMetrics(),
		ErrWriter: errWriter,
		Stdin:     os.Stdin,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = newLogger(cfg, errWriter)
	}
	return app, nil
}

// newLogger builds the zerolog-backed logger for cfg. Debug entries are
// emitted only with --verbose; --quiet keeps errors only.
func newLogger(cfg config.AppConfig, w io.Writer) logging.Logger {
	var zl zerolog.Logger
	if cfg.JSONLogs {
		zl = zerolog.New(w).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor}).With().Timestamp().Logger()
	}
	switch {
	case cfg.Verbose:
		zl = zl.Level(zerolog.DebugLevel)
	case cfg.Quiet:
		zl = zl.Level(zerolog.ErrorLevel)
	default:
		zl = zl.Level(zerolog.InfoLevel)
	}
	return logging.NewZerologAdapter(zl)
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var err error
	if a.Config.BatchFile != "" {
		err = a.runBatch(ctx, out)
	} else {
		err = a.runSingle(out)
	}

	if a.Config.MetricsFile != "" {
		if werr := a.Metrics.WriteTextfile(a.Config.MetricsFile); werr != nil {
			a.Logger.Error("writing metrics failed", werr, logging.String("path", a.Config.MetricsFile))
			if err == nil {
				err = werr
			}
		}
	}

	if err != nil {
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// HasVersionFlag reports whether args request the version string.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// Version is overridden at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// PrintVersion writes the program version.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "magsub %s\n", Version)
}
