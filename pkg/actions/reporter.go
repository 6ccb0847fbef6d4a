package actions

import (
	"fmt"
	"io"

	"github.com/githubnext/timeout-lint/pkg/logger"
)

var reporterLog = logger.New("actions:reporter")

// Reporter presents a lint run as workflow commands so the runner folds each
// file into a log group and annotates violations.
type Reporter struct {
	out          io.Writer
	outputFile   string
	newDelimiter func() string
	failed       bool
	err          error
}

// NewReporter creates a Reporter writing commands to out. outputFile is the
// value of GITHUB_OUTPUT; when empty, outputs fall back to the set-output
// command.
func NewReporter(out io.Writer, outputFile string) *Reporter {
	return &Reporter{
		out:          out,
		outputFile:   outputFile,
		newDelimiter: newDelimiter,
	}
}

// Failed reports whether SetFailed was called.
func (r *Reporter) Failed() bool {
	return r.failed
}

// Err returns the first error encountered while writing to out.
func (r *Reporter) Err() error {
	return r.err
}

func (r *Reporter) issue(c Command) {
	if err := Issue(r.out, c); err != nil && r.err == nil {
		r.err = err
	}
}

func (r *Reporter) Group(name string) {
	r.issue(Command{Name: "group", Message: name})
}

func (r *Reporter) EndGroup() {
	r.issue(Command{Name: "endgroup"})
}

func (r *Reporter) Info(msg string) {
	if _, err := fmt.Fprintln(r.out, msg); err != nil && r.err == nil {
		r.err = err
	}
}

func (r *Reporter) Error(msg string) {
	r.issue(Command{Name: "error", Message: msg})
}

func (r *Reporter) Debug(msg string) {
	r.issue(Command{Name: "debug", Message: msg})
}

// SetOutput appends the output to GITHUB_OUTPUT, or issues the legacy
// set-output command when no output file is configured.
func (r *Reporter) SetOutput(name, value string) error {
	if r.outputFile == "" {
		reporterLog.Printf("GITHUB_OUTPUT not set, issuing set-output for %s", name)
		r.Info("")
		r.issue(Command{Name: "set-output", Properties: map[string]string{"name": name}, Message: value})
		return r.err
	}

	entry, err := formatKeyValue(name, value, r.newDelimiter())
	if err != nil {
		return err
	}
	reporterLog.Printf("Writing output %s to %s", name, r.outputFile)
	return appendFileCommand(r.outputFile, entry)
}

// SetFailed records the failure and annotates it as an error.
func (r *Reporter) SetFailed(msg string) {
	r.failed = true
	r.Error(msg)
}
