package console

import (
	"fmt"
	"io"

	"github.com/githubnext/timeout-lint/pkg/logger"
)

var reporterLog = logger.New("console:reporter")

// Reporter renders a lint run for a local terminal. Diagnostics go to out;
// debug lines and the failure summary go to errOut.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	failed  bool
}

// NewReporter creates a Reporter. Debug lines are only shown when verbose.
func NewReporter(out, errOut io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, errOut: errOut, verbose: verbose}
}

// Failed reports whether SetFailed was called.
func (r *Reporter) Failed() bool { return r.failed }

func (r *Reporter) Group(name string) {
	fmt.Fprintln(r.out, FormatSectionHeader(name))
}

func (r *Reporter) EndGroup() {
	fmt.Fprintln(r.out)
}

func (r *Reporter) Info(msg string) {
	fmt.Fprintln(r.out, IndentLines(msg, "  "))
}

func (r *Reporter) Error(msg string) {
	fmt.Fprintln(r.out, "  "+FormatErrorMessage(msg))
}

func (r *Reporter) Debug(msg string) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.errOut, FormatVerboseMessage(msg))
}

// SetOutput has no destination outside a workflow run; the value is only logged.
func (r *Reporter) SetOutput(name, value string) error {
	reporterLog.Printf("Dropping output %s (%d bytes)", name, len(value))
	return nil
}

func (r *Reporter) SetFailed(msg string) {
	r.failed = true
	fmt.Fprintln(r.errOut, FormatErrorMessage(msg))
}
