//go:build !integration

package lint

import (
	"errors"
	"fmt"
)

// call is one method invocation captured by recordingReporter.
type call struct {
	Method string
	Args   []string
}

func (c call) String() string {
	return fmt.Sprintf("%s%q", c.Method, c.Args)
}

// recordingReporter captures every Reporter call for assertions.
type recordingReporter struct {
	calls     []call
	outputErr error
	panicOn   string
}

func (r *recordingReporter) record(method string, args ...string) {
	r.calls = append(r.calls, call{Method: method, Args: args})
	if r.panicOn != "" && r.panicOn == method {
		panic(errors.New("reporter exploded in " + method))
	}
}

func (r *recordingReporter) Group(name string) { r.record("Group", name) }
func (r *recordingReporter) EndGroup() { r.record("EndGroup") }
func (r *recordingReporter) Info(msg string) { r.record("Info", msg) }
func (r *recordingReporter) Error(msg string) { r.record("Error", msg) }
func (r *recordingReporter) Debug(msg string) { r.record("Debug", msg) }

func (r *recordingReporter) SetOutput(name, value string) error {
	r.record("SetOutput", name, value)
	return r.outputErr
}

func (r *recordingReporter) SetFailed(msg string) { r.record("SetFailed", msg) }

// methods returns the called method names, skipping Debug which carries
// environment-specific error text.
func (r *recordingReporter) methods() []string {
	var out []string
	for _, c := range r.calls {
		if c.Method == "Debug" {
			continue
		}
		out = append(out, c.Method)
	}
	return out
}

// find returns the calls to method.
func (r *recordingReporter) find(method string) []call {
	var out []call
	for _, c := range r.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}
