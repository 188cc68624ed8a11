package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// SpinnerRefreshRate defines the refresh frequency of the batch spinner.
	SpinnerRefreshRate = 200 * time.Millisecond
)

// Spinner abstracts a terminal spinner so batch presentation can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is replaced in tests.
var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(w))
	return &realSpinner{s}
}

// StartSpinner starts a spinner on w with the given message and returns the
// function that stops it. The spinner stays silent when w is not a terminal.
func StartSpinner(w io.Writer, msg string) (stop func()) {
	s := newSpinner(w)
	s.UpdateSuffix(" " + msg)
	s.Start()
	return s.Stop
}

// Truncate shortens a rendered number longer than TruncationLimit to its
// first and last DisplayEdges characters. The sign, if any, is kept.
func Truncate(s string) (string, bool) {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= TruncationLimit {
		return sign + s, false
	}
	return fmt.Sprintf("%s%s...%s", sign, s[:DisplayEdges], s[len(s)-DisplayEdges:]), true
}
