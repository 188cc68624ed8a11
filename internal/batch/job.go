package batch

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/agbru/magsub/internal/config"
	apperrors "github.com/agbru/magsub/internal/errors"
	"github.com/agbru/magsub/internal/magnitude"
)

// maxLineBytes bounds a single job line. Operands of a few million decimal
// digits fit comfortably.
const maxLineBytes = 16 << 20

// Job is a single subtraction request.
type Job struct {
	A, B magnitude.Magnitude
	// Op is one of config.Ops.
	Op string
	// Line is the 1-based source line, or 0 when the job was not parsed.
	Line int
}

// Apply runs job and returns the signed value of A - B.
// The operands are never modified.
func Apply(job Job) (res magnitude.Signed, err error) {
	defer apperrors.RecoverUnderflow(&err)

	switch job.Op {
	case config.OpSign:
		return magnitude.SubSign(job.A, job.B), nil

	case config.OpSub:
		z := magnitude.FromSlice(job.A)
		magnitude.Sub(z, job.B)
		return unsigned(z), nil

	case config.OpSubRev:
		// The result lands in B's storage, widened so a longer A still fits.
		z := make(magnitude.Magnitude, max(len(job.A), len(job.B)))
		copy(z, job.B)
		magnitude.SubRev(job.A, z)
		return unsigned(z), nil

	case config.OpScalar:
		b := magnitude.Normalize(job.B)
		if len(b) > 1 {
			return magnitude.Signed{}, apperrors.ValidationError{Field: "b", Message: "scalar subtrahend must fit in one digit"}
		}
		var d magnitude.Digit
		if len(b) == 1 {
			d = b[0]
		}
		z := magnitude.FromSlice(job.A)
		if magnitude.SubScalar(z, d) {
			return magnitude.Signed{}, &apperrors.UnderflowError{Op: config.OpScalar, A: job.A, B: b}
		}
		return unsigned(z), nil

	default:
		return magnitude.Signed{}, apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", job.Op)}
	}
}

// unsigned boxes the result of a strict subtraction, which is never negative.
func unsigned(z magnitude.Magnitude) magnitude.Signed {
	z = magnitude.Normalize(z)
	if len(z) == 0 {
		return magnitude.Signed{Sign: magnitude.NoSign, Mag: magnitude.Zero()}
	}
	return magnitude.Signed{Sign: magnitude.Positive, Mag: z}
}

// ParseJobs reads one job per line in the form "a b [op]". Blank lines and
// lines starting with '#' are skipped. A missing op defaults to config.OpSign.
func ParseJobs(r io.Reader, radix int) ([]Job, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var jobs []Job
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, apperrors.WrapError(
				apperrors.ValidationError{Field: "line", Message: fmt.Sprintf("expected 'a b [op]', got %d fields", len(fields))},
				"line %d", line)
		}
		op := config.OpSign
		if len(fields) == 3 {
			op = fields[2]
			if !slices.Contains(config.Ops, op) {
				return nil, apperrors.WrapError(
					apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", op)},
					"line %d", line)
			}
		}

		a, err := magnitude.Parse(fields[0], radix)
		if err != nil {
			return nil, apperrors.WrapError(err, "line %d", line)
		}
		b, err := magnitude.Parse(fields[1], radix)
		if err != nil {
			return nil, apperrors.WrapError(err, "line %d", line)
		}
		jobs = append(jobs, Job{A: a, B: b, Op: op, Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, apperrors.WrapError(err, "reading jobs")
	}
	return jobs, nil
}
