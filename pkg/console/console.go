// Package console formats messages and tables for interactive terminals.
//
// All helpers fall back to plain text when stderr is not a terminal or
// NO_COLOR is set.
package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/githubnext/timeout-lint/pkg/styles"
	"github.com/githubnext/timeout-lint/pkg/tty"
	"github.com/muesli/termenv"
)

// isTTY is a variable so tests can force styled or plain output.
var isTTY = func() bool {
	return tty.IsStderrTerminal() && !termenv.EnvNoColor()
}

func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// FormatSuccessMessage formats a success message.
func FormatSuccessMessage(message string) string {
	return applyStyle(styles.Success, "✓ ") + message
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return applyStyle(styles.Info, "ℹ ") + message
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(message string) string {
	return applyStyle(styles.Warning, "⚠ ") + message
}

// FormatErrorMessage formats an error message.
func FormatErrorMessage(message string) string {
	return applyStyle(styles.Error, "✗ ") + message
}

// FormatVerboseMessage formats a debug line shown with --verbose.
func FormatVerboseMessage(message string) string {
	return applyStyle(styles.Muted, "🔍 "+message)
}

// FormatSectionHeader formats a section header.
func FormatSectionHeader(header string) string {
	return applyStyle(styles.Header, header)
}

// IndentLines prefixes every line of text with indent.
func IndentLines(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
