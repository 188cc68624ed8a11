package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/magsub/internal/batch"
	"github.com/agbru/magsub/internal/cli"
	apperrors "github.com/agbru/magsub/internal/errors"
	"github.com/agbru/magsub/internal/logging"
	"github.com/agbru/magsub/internal/magnitude"
)

// runSingle evaluates the operands given on the command line.
func (a *Application) runSingle(out io.Writer) error {
	x, err := magnitude.Parse(a.Config.A, a.Config.Radix)
	if err != nil {
		return a.fail("invalid minuend", err)
	}
	y, err := magnitude.Parse(a.Config.B, a.Config.Radix)
	if err != nil {
		return a.fail("invalid subtrahend", err)
	}

	job := batch.Job{A: x, B: y, Op: a.Config.Op}
	a.Logger.Debug("evaluating",
		logging.String("op", job.Op),
		logging.Int("a.digits", len(x)),
		logging.Int("b.digits", len(y)))

	start := time.Now()
	res, err := batch.Apply(job)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnderflow) {
			a.Metrics.ObserveUnderflow(job.Op)
		}
		return a.fail("subtraction failed", err)
	}
	a.Metrics.ObserveOperation(job.Op, res.Sign.String(), max(len(x), len(y)))

	cli.DisplayResult(out, a.Config.A, a.Config.B, job.Op, res, a.outputConfig())
	a.Logger.Debug("done", logging.String("elapsed", cli.FormatExecutionDuration(time.Since(start))))
	return nil
}

// runBatch evaluates every job of the configured batch file.
// Failed jobs are reported inline; the exit code reflects the first failure.
func (a *Application) runBatch(ctx context.Context, out io.Writer) error {
	r := a.Stdin
	if a.Config.BatchFile != "-" {
		f, err := os.Open(a.Config.BatchFile)
		if err != nil {
			return a.fail("opening batch file", apperrors.WrapError(err, "batch %s", a.Config.BatchFile))
		}
		defer f.Close()
		r = f
	}

	jobs, err := batch.ParseJobs(r, a.Config.Radix)
	if err != nil {
		return a.fail("parsing batch", err)
	}

	var stop func()
	if !a.Config.Quiet {
		stop = cli.StartSpinner(a.ErrWriter, fmt.Sprintf("Evaluating %d jobs", len(jobs)))
	}
	start := time.Now()
	results, err := batch.Evaluate(ctx, jobs, batch.Options{
		Workers: a.Config.Workers,
		Logger:  a.Logger,
		Metrics: a.Metrics,
	})
	if stop != nil {
		stop()
	}
	if err != nil {
		return a.fail("batch interrupted", err)
	}

	failed := cli.DisplayBatchResults(out, results, a.outputConfig())
	a.Logger.Info("batch complete",
		logging.Int("jobs", len(jobs)),
		logging.Int("failed", failed),
		logging.String("elapsed", cli.FormatExecutionDuration(time.Since(start))))

	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{Radix: a.Config.Radix, Quiet: a.Config.Quiet, Verbose: a.Config.Verbose}
}

// fail logs err and returns it for exit-code mapping.
func (a *Application) fail(msg string, err error) error {
	a.Logger.Error(msg, err)
	return err
}
