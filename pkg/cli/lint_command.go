package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/githubnext/timeout-lint/pkg/actions"
	"github.com/githubnext/timeout-lint/pkg/console"
	"github.com/githubnext/timeout-lint/pkg/constants"
	"github.com/githubnext/timeout-lint/pkg/envutil"
	"github.com/githubnext/timeout-lint/pkg/lint"
	"github.com/githubnext/timeout-lint/pkg/logger"
	"github.com/spf13/cobra"
)

var lintLog = logger.New("cli:lint_command")

// ErrLintFailed is returned when a run fails. The failure has already been
// reported by the selected output format.
var ErrLintFailed = errors.New("lint failed")

// LintConfig holds configuration for a lint run.
type LintConfig struct {
	Root         string
	Format       constants.OutputFormat
	LegacyPlural bool
	Verbose      bool
}

// NewRootCommand creates the timeout-lint command.
func NewRootCommand() *cobra.Command {
	defaultFormat := envutil.GetStringFromEnv(constants.EnvFormat.String(), constants.FormatAuto.String(), lintLog)

	cmd := &cobra.Command{
		Use:   constants.CLIName + " [root]",
		Short: "Check that every workflow job declares a numeric timeout-minutes",
		Long: `Scan .github/workflows for .yml and .yaml files and report every job that
runs directly on a runner without a numeric timeout-minutes. Jobs that call a
reusable workflow with "uses" are skipped.

The repository root defaults to $GITHUB_WORKSPACE, or the current directory.

Examples:
  ` + constants.CLIName + `                    # Lint the current repository
  ` + constants.CLIName + ` ../other-repo      # Lint another checkout
  ` + constants.CLIName + ` --format json      # Print the result as JSON
  ` + constants.CLIName + ` -f actions         # Emit GitHub Actions workflow commands`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			legacyPlural, _ := cmd.Flags().GetBool("legacy-plural")
			verbose, _ := cmd.Flags().GetBool("verbose")

			root := envutil.GetStringFromEnv(constants.EnvGitHubWorkspace.String(), ".", lintLog)
			if len(args) > 0 {
				root = args[0]
			}

			outputFormat, err := resolveFormat(format)
			if err != nil {
				return err
			}

			config := LintConfig{
				Root:         root,
				Format:       outputFormat,
				LegacyPlural: legacyPlural,
				Verbose:      verbose,
			}
			_, err = RunLint(config, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}

	cmd.Flags().StringP("format", "f", defaultFormat, "Output format: "+formatList())
	cmd.Flags().Bool("legacy-plural", false, `Reproduce the summary wording of earlier releases of the action, which pluralizes any non-zero count ("1 violations found.")`)
	cmd.Flags().BoolP("verbose", "v", false, "Show parse errors and other debug details")

	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// RunLint lints config.Root and writes the report in config.Format.
// A failed run returns ErrLintFailed alongside the result.
func RunLint(config LintConfig, stdout, stderr io.Writer) (lint.Result, error) {
	lintLog.Printf("Running lint: root=%s, format=%s, legacy_plural=%v", config.Root, config.Format, config.LegacyPlural)

	opts := lint.Options{Root: config.Root, LegacyPlural: config.LegacyPlural}

	var result lint.Result
	switch config.Format {
	case constants.FormatActions:
		outputFile := envutil.GetStringFromEnv(constants.EnvGitHubOutput.String(), "", lintLog)
		reporter := actions.NewReporter(stdout, outputFile)
		result = lint.NewRunner(reporter, opts).Run()
		if err := reporter.Err(); err != nil {
			return result, fmt.Errorf("failed to write workflow commands: %w", err)
		}
	case constants.FormatJSON:
		result = lint.NewRunner(lint.NopReporter{}, opts).Run()
		if err := writeJSON(stdout, result); err != nil {
			return result, err
		}
	case constants.FormatConsole:
		reporter := console.NewReporter(stdout, stderr, config.Verbose)
		result = lint.NewRunner(reporter, opts).Run()
		writeConsoleSummary(stdout, stderr, result)
	default:
		return lint.Result{}, fmt.Errorf("unsupported output format %q", config.Format)
	}

	if result.Failed {
		return result, fmt.Errorf("%w: %s", ErrLintFailed, result.Summary)
	}
	return result, nil
}

// resolveFormat validates the --format value and resolves "auto" from the
// environment.
func resolveFormat(value string) (constants.OutputFormat, error) {
	format := constants.OutputFormat(strings.ToLower(strings.TrimSpace(value)))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid format %q: must be one of %s", value, formatList())
	}
	if format != constants.FormatAuto {
		return format, nil
	}
	if envutil.GetBoolFromEnv(constants.EnvGitHubActions.String(), false, lintLog) {
		return constants.FormatActions, nil
	}
	return constants.FormatConsole, nil
}

func formatList() string {
	names := make([]string, 0, len(constants.OutputFormats))
	for _, f := range constants.OutputFormats {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func writeJSON(w io.Writer, result lint.Result) error {
	if result.Files == nil {
		result.Files = []lint.FileResult{}
	}
	if result.Messages == nil {
		result.Messages = []string{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// writeConsoleSummary prints a per-file table after the diagnostic stream.
func writeConsoleSummary(stdout, stderr io.Writer, result lint.Result) {
	if len(result.Files) == 0 {
		if !result.Failed {
			fmt.Fprintln(stderr, console.FormatInfoMessage("No workflow files found"))
		}
		return
	}

	rows := make([][]string, 0, len(result.Files))
	for _, file := range result.Files {
		rows = append(rows, []string{file.Name, string(file.Status), strconv.Itoa(len(file.Messages))})
	}
	fmt.Fprint(stdout, console.RenderTable(console.TableConfig{
		Title:     "Summary",
		Headers:   []string{"File", "Status", "Violations"},
		Rows:      rows,
		ShowTotal: true,
		TotalRow:  []string{"TOTAL", "", strconv.Itoa(len(result.Messages))},
	}))

	if !result.Failed {
		fmt.Fprintln(stderr, console.FormatSuccessMessage(fmt.Sprintf("%d workflow files checked", len(result.Files))))
	}
}
