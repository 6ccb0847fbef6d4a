//go:build !integration

package lint

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRepo creates a repository root holding the given workflow files,
// keyed by path relative to .github/workflows.
func newRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, ".github", "workflows", filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestRunner_DelegatedJobPasses(t *testing.T) {
	root := newRepo(t, map[string]string{
		"ci.yml": "jobs:\n  build:\n    uses: x/y\n",
	})
	rec := &recordingReporter{}

	result := NewRunner(rec, Options{Root: root}).Run()

	assert.False(t, result.Failed, "Run should succeed")
	assert.Empty(t, result.Messages, "No violations expected")
	assert.Equal(t, []call{
		{Method: "Group", Args: []string{"File: .github/workflows/ci.yml"}},
		{Method: "Info", Args: []string{"Pass."}},
		{Method: "EndGroup"},
	}, rec.calls, "Unexpected reporter calls")
	require.Len(t, result.Files, 1)
	assert.Equal(t, StatusPass, result.Files[0].Status)
}

func TestRunner_MissingTimeout(t *testing.T) {
	root := newRepo(t, map[string]string{
		"ci.yml": "jobs:\n  build: {}\n",
	})
	rec := &recordingReporter{}

	result := NewRunner(rec, Options{Root: root}).Run()

	require.True(t, result.Failed, "Run should fail")
	require.Len(t, result.Messages, 1)
	assert.Contains(t, result.Messages[0], "build", "Message should name the job")
	assert.Contains(t, result.Messages[0], `"timeout-minutes" does not exist`)
	assert.Equal(t, "1 violation found.", result.Summary)

	assert.Equal(t, []string{"Group", "Error", "EndGroup", "SetOutput", "SetFailed"}, rec.methods())
	assert.Equal(t, []string{"message", result.Messages[0]}, rec.find("SetOutput")[0].Args)
	assert.Equal(t, []string{"1 violation found."}, rec.find("SetFailed")[0].Args)
}

func TestRunner_StringTimeout(t *testing.T) {
	root := newRepo(t, map[string]string{
		"test.yaml": "jobs:\n  test:\n    timeout-minutes: \"5\"\n",
	})
	rec := &recordingReporter{}

	result := NewRunner(rec, Options{Root: root}).Run()

	require.True(t, result.Failed)
	assert.Equal(t, []string{
		`[.github/workflows/test.yaml :: test] Value of the property "timeout-minutes" is not a number.`,
	}, result.Messages)
}

func TestRunner_UnparseableFile(t *testing.T) {
	root := newRepo(t, map[string]string{
		"broken.yml": "this is not: valid: yaml: at: all:",
	})
	rec := &recordingReporter{}

	result := NewRunner(rec, Options{Root: root}).Run()

	assert.False(t, result.Failed, "Unparseable files alone should not fail the run")
	assert.Empty(t, result.Messages, "Unparseable files contribute no messages")
	assert.Equal(t, []string{"Group", "Info", "EndGroup"}, rec.methods())
	assert.Equal(t, []string{MsgUnparseable}, rec.find("Info")[0].Args)
	assert.Len(t, rec.find("Debug"), 1, "The parse error should be reported at debug level")
	require.Len(t, result.Files, 1)
	assert.Equal(t, StatusUnparseable, result.Files[0].Status)
}

func TestRunner_MissingJobs(t *testing.T) {
	tests := map[string]string{
		"no jobs key":   "name: docs\non: push\n",
		"null jobs":     "jobs:\n",
		"sequence jobs": "jobs:\n  - build\n",
		"scalar root":   "hello\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			root := newRepo(t, map[string]string{"w.yml": content})
			rec := &recordingReporter{}

			result := NewRunner(rec, Options{Root: root}).Run()

			assert.False(t, result.Failed)
			assert.Equal(t, []string{"Group", "Info", "EndGroup"}, rec.methods())
			assert.Equal(t, []string{MsgNoJobs}, rec.find("Info")[0].Args)
		})
	}
}

func TestRunner_OnePassingOneFailing(t *testing.T) {
	root := newRepo(t, map[string]string{
		"a-pass.yml": "jobs:\n  ok:\n    timeout-minutes: 10\n",
		"b-fail.yml": "jobs:\n  bad: {runs-on: ubuntu-latest}\n",
	})
	rec := &recordingReporter{}

	result := NewRunner(rec, Options{Root: root}).Run()

	require.True(t, result.Failed)
	assert.Equal(t, "1 violation found.", result.Summary)

	outputs := rec.find("SetOutput")
	require.Len(t, outputs, 1, "Output should be set exactly once")
	assert.Equal(t, "message", outputs[0].Args[0])
	assert.Len(t, strings.Split(outputs[0].Args[1], "\n"), 1, "Output should contain exactly one line")
	assert.Equal(t, []string{
		"Group", "Info", "EndGroup",
		"Group", "Error", "EndGroup",
		"SetOutput", "SetFailed",
	}, rec.methods(), "Files should be processed in order with output set last")
}

func TestRunner_ViolationsAcrossFiles(t *testing.T) {
	root := newRepo(t, map[string]string{
		"one.yml":        "jobs:\n  a: {}\n  b:\n    timeout-minutes: \"x\"\n",
		"nested/two.yml": "jobs:\n  c:\n    name: C\n",
		"three.yml":      "jobs:\n  d:\n    uses: ./.github/workflows/one.yml\n",
	})

	t.Run("default pluralization", func(t *testing.T) {
		rec := &recordingReporter{}
		result := NewRunner(rec, Options{Root: root}).Run()

		require.True(t, result.Failed)
		assert.Equal(t, "3 violations found.", result.Summary)
		assert.Equal(t, []string{
			`[.github/workflows/nested/two.yml :: c] Property "timeout-minutes" does not exist.`,
			`[.github/workflows/one.yml :: a] Property "timeout-minutes" does not exist.`,
			`[.github/workflows/one.yml :: b] Value of the property "timeout-minutes" is not a number.`,
		}, result.Messages)
		assert.Equal(t, strings.Join(result.Messages, "\n"), rec.find("SetOutput")[0].Args[1])
	})

	t.Run("legacy pluralization", func(t *testing.T) {
		single := newRepo(t, map[string]string{"x.yml": "jobs:\n  a: {}\n"})
		rec := &recordingReporter{}
		result := NewRunner(rec, Options{Root: single, LegacyPlural: true}).Run()

		assert.Equal(t, "1 violations found.", result.Summary)
	})
}

func TestRunner_NoWorkflows(t *testing.T) {
	rec := &recordingReporter{}

	result := NewRunner(rec, Options{Root: t.TempDir()}).Run()

	assert.False(t, result.Failed)
	assert.Empty(t, result.Files)
	assert.Empty(t, rec.calls, "Nothing should be reported without workflow files")
}

func TestRunner_OutputError(t *testing.T) {
	root := newRepo(t, map[string]string{"ci.yml": "jobs:\n  build: {}\n"})
	rec := &recordingReporter{outputErr: errors.New("disk full")}

	result := NewRunner(rec, Options{Root: root}).Run()

	require.True(t, result.Failed)
	assert.Contains(t, result.Summary, "disk full")
	assert.Empty(t, result.Messages, "Fatal errors publish no partial results")
	failed := rec.find("SetFailed")
	require.Len(t, failed, 1)
	assert.Equal(t, result.Summary, failed[0].Args[0])
}

func TestRunner_PanicIsFatal(t *testing.T) {
	root := newRepo(t, map[string]string{"ci.yml": "jobs:\n  build:\n    timeout-minutes: 5\n"})
	rec := &recordingReporter{panicOn: "Info"}

	result := NewRunner(rec, Options{Root: root}).Run()

	require.True(t, result.Failed, "A panic should fail the run")
	assert.Contains(t, result.Summary, "reporter exploded in Info")
	assert.Equal(t, []string{"Group", "Info", "EndGroup", "SetFailed"}, rec.methods(),
		"The open group should still be closed")
}

func TestRunner_DiscoveryError(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("requires enforced directory permissions")
	}

	root := newRepo(t, map[string]string{"locked/ci.yml": "jobs: {}\n"})
	locked := filepath.Join(root, ".github", "workflows", "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	rec := &recordingReporter{}
	result := NewRunner(rec, Options{Root: root}).Run()

	require.True(t, result.Failed)
	assert.Equal(t, []string{"SetFailed"}, rec.methods(), "Only the failure should be reported")
}

func TestNewRunner_DefaultRoot(t *testing.T) {
	r := NewRunner(NopReporter{}, Options{})
	assert.Equal(t, ".", r.opts.Root)
}
