package lint

import (
	"fmt"

	"github.com/githubnext/timeout-lint/pkg/workflow"
)

// Informational lines written for files that produce no violations.
const (
	MsgUnparseable = "Unable to parse YAML."
	MsgNoJobs      = `Property "jobs" does not exist.`
	MsgPass        = "Pass."
)

// GroupName returns the group header for a workflow file.
func GroupName(filename string) string {
	return "File: " + filename
}

// FormatViolation renders a violation as the error line reported for it.
func FormatViolation(filename string, v workflow.JobValidationResult) string {
	switch v.Reason {
	case workflow.ReasonNotANumber:
		return fmt.Sprintf(`[%s :: %s] Value of the property "timeout-minutes" is not a number.`, filename, v.JobID)
	default:
		return fmt.Sprintf(`[%s :: %s] Property "timeout-minutes" does not exist.`, filename, v.JobID)
	}
}

// Summary returns the failure summary for count violations.
//
// With legacy set the plural suffix is added for every count above zero,
// so a single violation reads "1 violations found.".
func Summary(count int, legacy bool) string {
	plural := count != 1
	if legacy {
		plural = count > 0
	}
	if plural {
		return fmt.Sprintf("%d violations found.", count)
	}
	return fmt.Sprintf("%d violation found.", count)
}
