package lint

// Reporter receives the diagnostic stream of a lint run. Implementations
// decide how it is presented: workflow commands on a GitHub Actions runner,
// styled terminal output, or nothing at all.
type Reporter interface {
	// Group opens a named section. Every Group is followed by EndGroup.
	Group(name string)
	EndGroup()

	Info(msg string)
	Error(msg string)
	Debug(msg string)

	// SetOutput publishes a named step output.
	SetOutput(name, value string) error
	// SetFailed marks the run as failed with a one-line summary.
	SetFailed(msg string)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Group(string) {}
func (NopReporter) EndGroup() {}
func (NopReporter) Info(string) {}
func (NopReporter) Error(string) {}
func (NopReporter) Debug(string) {}
func (NopReporter) SetFailed(string) {}

func (NopReporter) SetOutput(string, string) error { return nil }
