// This file implements the timeout-minutes rule.
//
// Every job that runs directly must set a numeric timeout-minutes so a hung
// job cannot consume runner time indefinitely. Jobs that call a reusable
// workflow through uses are exempt: the called workflow's own jobs carry the
// limit.
//
// The check is a type check only. 0, negative numbers, .nan and .inf all pass.

package workflow

import (
	"fmt"

	"github.com/githubnext/timeout-lint/pkg/logger"
)

var timeoutValidationLog = logger.New("workflow:timeout_validation")

// Reason explains why a job failed the timeout-minutes rule.
type Reason int

const (
	// ReasonNotDefined means the job has no timeout-minutes key.
	ReasonNotDefined Reason = iota + 1
	// ReasonNotANumber means timeout-minutes is set to a non-numeric value.
	ReasonNotANumber
)

func (r Reason) String() string {
	switch r {
	case ReasonNotDefined:
		return "not defined"
	case ReasonNotANumber:
		return "not a number"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// JobValidationResult records one job that failed the rule.
type JobValidationResult struct {
	JobID   string
	Name    string
	HasName bool
	Reason  Reason
}

// ValidationOutcome is either clean or a non-empty list of violations.
type ValidationOutcome struct {
	violations []JobValidationResult
}

// Clean reports whether no job violated the rule.
func (o ValidationOutcome) Clean() bool {
	return len(o.violations) == 0
}

// Violations returns the violations in job order. It is empty when Clean.
func (o ValidationOutcome) Violations() []JobValidationResult {
	return append([]JobValidationResult(nil), o.violations...)
}

// ValidateJobs checks every job of a jobs mapping against the timeout-minutes
// rule. It does not modify jobs.
func ValidateJobs(jobs *Mapping) ValidationOutcome {
	var violations []JobValidationResult

	for _, job := range Jobs(jobs) {
		if !job.Value.Truthy() {
			timeoutValidationLog.Printf("Skipping empty job %s", job.ID)
			continue
		}
		if job.IsDelegated() {
			timeoutValidationLog.Printf("Skipping reusable workflow job %s", job.ID)
			continue
		}

		reason, ok := checkTimeoutMinutes(job)
		if ok {
			continue
		}

		name, hasName := job.Name()
		violations = append(violations, JobValidationResult{
			JobID:   job.ID,
			Name:    name,
			HasName: hasName,
			Reason:  reason,
		})
	}

	timeoutValidationLog.Printf("Validated %d jobs, %d violations", jobs.Len(), len(violations))
	return ValidationOutcome{violations: violations}
}

func checkTimeoutMinutes(job Job) (Reason, bool) {
	timeout, present := job.TimeoutMinutes()
	if !present {
		return ReasonNotDefined, false
	}
	if timeout.Kind() != KindNumber {
		return ReasonNotANumber, false
	}
	return 0, true
}
