// Package constants holds names and fixed values shared across the linter.
package constants

import (
	"path/filepath"
	"slices"
)

// CLIName is the name of the command-line binary.
const CLIName = "timeout-lint"

// Version is the version string reported by the version command. It is
// overridden at build time with -ldflags "-X ...constants.Version=...".
var Version = "dev"

// EnvVarName is the name of an environment variable read by the linter.
type EnvVarName string

// String returns the string representation of the environment variable name
func (e EnvVarName) String() string {
	return string(e)
}

const (
	// EnvGitHubWorkspace is the checkout directory on GitHub Actions runners.
	EnvGitHubWorkspace EnvVarName = "GITHUB_WORKSPACE"
	// EnvGitHubActions is set to "true" on GitHub Actions runners.
	EnvGitHubActions EnvVarName = "GITHUB_ACTIONS"
	// EnvGitHubOutput names the file that step outputs are appended to.
	EnvGitHubOutput EnvVarName = "GITHUB_OUTPUT"
	// EnvFormat overrides the default of the --format flag.
	EnvFormat EnvVarName = "TIMEOUT_LINT_FORMAT"
)

// OutputFormat selects how lint results are reported.
type OutputFormat string

// String returns the string representation of the output format
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid reports whether f is one of the supported formats.
func (f OutputFormat) IsValid() bool {
	return slices.Contains(OutputFormats, f)
}

const (
	FormatAuto    OutputFormat = "auto"
	FormatActions OutputFormat = "actions"
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
)

// OutputFormats lists every accepted value of --format.
var OutputFormats = []OutputFormat{FormatAuto, FormatActions, FormatConsole, FormatJSON}

// WorkflowsDirMarker is the path fragment used to shorten workflow paths for display.
const WorkflowsDirMarker = ".github/workflows/"

// WorkflowExtensions are the file extensions treated as workflow files.
var WorkflowExtensions = []string{".yml", ".yaml"}

// GetWorkflowDir returns the workflows directory relative to a repository root.
func GetWorkflowDir() string {
	return filepath.Join(".github", "workflows")
}

// Job property names inspected by the validator.
const (
	JobsKey           = "jobs"
	JobNameKey        = "name"
	JobUsesKey        = "uses"
	TimeoutMinutesKey = "timeout-minutes"
)

// MessageOutputName is the step output that receives all violation messages.
const MessageOutputName = "message"
