package batch

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/magsub/internal/errors"
	"github.com/agbru/magsub/internal/logging"
	"github.com/agbru/magsub/internal/magnitude"
	"github.com/agbru/magsub/internal/metrics"
)

const tracerName = "github.com/agbru/magsub/internal/batch"

// Result is the outcome of one job. Exactly one of Value and Err is meaningful.
type Result struct {
	Index int
	Job   Job
	Value magnitude.Signed
	Err   error
}

// Options configures Evaluate. Zero values are usable: one worker, no
// logging, no metrics.
type Options struct {
	Workers int
	Logger  logging.Logger
	Metrics *metrics.Metrics
}

// Evaluate runs jobs concurrently, bounded by opts.Workers, and returns one
// Result per job in input order. Per-job failures are reported in the
// results; the returned error is non-nil only when ctx ends first.
func Evaluate(ctx context.Context, jobs []Job, opts Options) ([]Result, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	workers := max(opts.Workers, 1)

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "batch.Evaluate", trace.WithAttributes(
		attribute.Int("jobs", len(jobs)),
		attribute.Int("workers", workers),
	))
	defer span.End()

	start := time.Now()
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluateOne(gctx, tracer, i, job, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch interrupted")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, "batch interrupted")
		return nil, err
	}

	elapsed := time.Since(start)
	if opts.Metrics != nil {
		opts.Metrics.ObserveBatch(elapsed)
	}
	opts.Logger.Debug("batch evaluated",
		logging.Int("jobs", len(jobs)),
		logging.Int("workers", workers),
		logging.Float64("ms", float64(elapsed.Microseconds())/1000))
	return results, nil
}

func evaluateOne(ctx context.Context, tracer trace.Tracer, i int, job Job, opts Options) Result {
	_, span := tracer.Start(ctx, "batch.job", trace.WithAttributes(
		attribute.Int("index", i),
		attribute.String("op", job.Op),
		attribute.Int("a.digits", len(job.A)),
		attribute.Int("b.digits", len(job.B)),
	))
	defer span.End()

	value, err := Apply(job)
	res := Result{Index: i, Job: job, Value: value, Err: err}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if opts.Metrics != nil && errors.Is(err, apperrors.ErrUnderflow) {
			opts.Metrics.ObserveUnderflow(job.Op)
		}
		opts.Logger.Debug("job failed", logging.Int("index", i), logging.Int("line", job.Line), logging.Err(err))
		return res
	}

	if opts.Metrics != nil {
		opts.Metrics.ObserveOperation(job.Op, value.Sign.String(), max(len(job.A), len(job.B)))
	}
	return res
}
