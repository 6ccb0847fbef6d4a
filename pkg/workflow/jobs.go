package workflow

import "github.com/githubnext/timeout-lint/pkg/constants"

// Job is a read-only view of one entry of a workflow's jobs mapping.
type Job struct {
	ID    string
	Value Value
}

// Jobs returns the entries of a jobs mapping in document order.
func Jobs(jobs *Mapping) []Job {
	result := make([]Job, 0, jobs.Len())
	for id, v := range jobs.All {
		result = append(result, Job{ID: id, Value: v})
	}
	return result
}

// Name returns the job's display name when it is a string.
func (j Job) Name() (string, bool) {
	v, ok := j.field(constants.JobNameKey)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Uses returns the reusable workflow reference, if any.
func (j Job) Uses() (Value, bool) {
	return j.field(constants.JobUsesKey)
}

// IsDelegated reports whether the job calls a reusable workflow. A present
// but falsy uses (empty string, null, false) does not count.
func (j Job) IsDelegated() bool {
	uses, ok := j.Uses()
	return ok && uses.Truthy()
}

// TimeoutMinutes returns the raw timeout-minutes value and whether the key
// is present at all.
func (j Job) TimeoutMinutes() (Value, bool) {
	return j.field(constants.TimeoutMinutesKey)
}

func (j Job) field(key string) (Value, bool) {
	m, ok := j.Value.AsMapping()
	if !ok {
		return Value{}, false
	}
	return m.Get(key)
}
