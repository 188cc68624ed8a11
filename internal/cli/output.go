// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayBatchResults], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatResult], [FormatExecutionDuration].

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/magsub/internal/batch"
	"github.com/agbru/magsub/internal/magnitude"
	"github.com/agbru/magsub/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Radix is the base results are printed in.
	Radix int
	// Quiet prints bare results, one per line, for scripting.
	Quiet bool
	// Verbose disables truncation of long results.
	Verbose bool
}

// FormatResult renders a signed result in cfg.Radix, truncated unless
// verbose or quiet.
func FormatResult(res magnitude.Signed, cfg OutputConfig) string {
	text := res.Text(cfg.Radix)
	if cfg.Quiet || cfg.Verbose {
		return text
	}
	if short, truncated := Truncate(text); truncated {
		return short + " (truncated, " + fmt.Sprint(len(text)) + " chars)"
	}
	return text
}

// DisplayResult writes "a <op> b = result" for a single subtraction.
func DisplayResult(out io.Writer, a, b, op string, res magnitude.Signed, cfg OutputConfig) {
	theme := ui.GetCurrentTheme()
	styled := theme.SignStyle(int(res.Sign)).Render(FormatResult(res, cfg))
	if cfg.Quiet {
		fmt.Fprintln(out, styled)
		return
	}
	a, _ = Truncate(a)
	b, _ = Truncate(b)
	fmt.Fprintf(out, "%s %s %s = %s\n", theme.Dim.Render(a), opSymbol(op), theme.Dim.Render(b), styled)
}

// DisplayBatchResults writes one line per result and returns the number of
// failed jobs.
func DisplayBatchResults(out io.Writer, results []batch.Result, cfg OutputConfig) (failed int) {
	theme := ui.GetCurrentTheme()
	for _, r := range results {
		if r.Err != nil {
			failed++
			if cfg.Quiet {
				fmt.Fprintln(out, theme.Error.Render("error"))
			} else {
				fmt.Fprintf(out, "line %d: %s\n", r.Job.Line, theme.Error.Render("error: "+firstLine(r.Err.Error())))
			}
			continue
		}
		styled := theme.SignStyle(int(r.Value.Sign)).Render(FormatResult(r.Value, cfg))
		if cfg.Quiet {
			fmt.Fprintln(out, styled)
		} else {
			fmt.Fprintf(out, "line %d: %s %s\n", r.Job.Line, theme.Dim.Render(r.Job.Op), styled)
		}
	}
	return failed
}

// DisplayError writes err to w in the error style.
func DisplayError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.GetCurrentTheme().Error.Render("Error: "+err.Error()))
}

func opSymbol(op string) string {
	if op == "subrev" {
		return "-(rev)"
	}
	return "-"
}

// firstLine trims multi-line messages such as underflow reports, which
// append the operands on further lines.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
