// Package lint drives a timeout-minutes lint run over a repository and
// reports the outcome through a Reporter.
package lint

import (
	"fmt"
	"strings"

	"github.com/githubnext/timeout-lint/pkg/constants"
	"github.com/githubnext/timeout-lint/pkg/logger"
	"github.com/githubnext/timeout-lint/pkg/workflow"
	"github.com/sourcegraph/conc/panics"
)

var runnerLog = logger.New("lint:runner")

// FileStatus is the outcome of checking one workflow file.
type FileStatus string

const (
	StatusPass        FileStatus = "pass"
	StatusViolations  FileStatus = "violations"
	StatusUnparseable FileStatus = "unparseable"
	StatusNoJobs      FileStatus = "no-jobs"
)

// Options configures a Runner.
type Options struct {
	// Root is the repository root that contains .github/workflows.
	Root string
	// LegacyPlural pluralizes the summary for every non-zero count.
	LegacyPlural bool
}

// FileResult is the outcome for a single workflow file.
type FileResult struct {
	Path     string     `json:"path"`
	Name     string     `json:"name"`
	Status   FileStatus `json:"status"`
	Messages []string   `json:"messages,omitempty"`
}

// Result is the outcome of a whole run.
type Result struct {
	Files    []FileResult `json:"files"`
	Messages []string     `json:"messages"`
	Failed   bool         `json:"failed"`
	Summary  string       `json:"summary,omitempty"`
}

// Runner checks every workflow file under a root, one file at a time.
type Runner struct {
	reporter Reporter
	opts     Options
}

// NewRunner creates a Runner reporting to reporter.
func NewRunner(reporter Reporter, opts Options) *Runner {
	if opts.Root == "" {
		opts.Root = "."
	}
	return &Runner{reporter: reporter, opts: opts}
}

// Run performs the lint run. Violations and fatal errors both produce a
// failed Result; a fatal error carries no per-file results.
func (r *Runner) Run() Result {
	var (
		result Result
		err    error
		pc     panics.Catcher
	)
	pc.Try(func() {
		result, err = r.run()
	})
	if recovered := pc.Recovered(); recovered != nil {
		err = recovered.AsError()
	}

	if err != nil {
		runnerLog.Printf("Run failed: %v", err)
		r.reporter.SetFailed(err.Error())
		return Result{Failed: true, Summary: err.Error()}
	}
	return result
}

func (r *Runner) run() (Result, error) {
	runnerLog.Printf("Linting workflows under %s", r.opts.Root)

	paths, err := workflow.FindWorkflowFiles(r.opts.Root)
	if err != nil {
		return Result{}, err
	}

	result := Result{Files: make([]FileResult, 0, len(paths))}
	for _, path := range paths {
		file := r.checkFile(path)
		result.Files = append(result.Files, file)
		if file.Status == StatusViolations {
			result.Messages = append(result.Messages, file.Messages...)
		}
	}

	if len(result.Messages) == 0 {
		runnerLog.Printf("No violations in %d files", len(paths))
		return result, nil
	}

	if err := r.reporter.SetOutput(constants.MessageOutputName, strings.Join(result.Messages, "\n")); err != nil {
		return Result{}, fmt.Errorf("failed to set output %q: %w", constants.MessageOutputName, err)
	}

	result.Failed = true
	result.Summary = Summary(len(result.Messages), r.opts.LegacyPlural)
	r.reporter.SetFailed(result.Summary)
	return result, nil
}

// checkFile parses and validates one file inside its own group.
func (r *Runner) checkFile(path string) FileResult {
	filename := workflow.DisplayName(path)
	file := FileResult{Path: path, Name: filename}

	r.reporter.Group(GroupName(filename))
	defer r.reporter.EndGroup()

	doc, err := workflow.ParseFile(path)
	if err != nil {
		r.reporter.Debug(err.Error())
		r.reporter.Info(MsgUnparseable)
		file.Status = StatusUnparseable
		return file
	}

	jobs, ok := doc.Jobs()
	if !ok {
		r.reporter.Info(MsgNoJobs)
		file.Status = StatusNoJobs
		return file
	}

	outcome := workflow.ValidateJobs(jobs)
	if outcome.Clean() {
		r.reporter.Info(MsgPass)
		file.Status = StatusPass
		return file
	}

	file.Status = StatusViolations
	for _, v := range outcome.Violations() {
		msg := FormatViolation(filename, v)
		r.reporter.Error(msg)
		file.Messages = append(file.Messages, msg)
	}
	return file
}
