package actions

import (
	"fmt"
	"strings"

	"github.com/githubnext/timeout-lint/pkg/fileutil"
	"github.com/google/uuid"
)

// delimiterPrefix starts the heredoc delimiter used for multi-line values.
const delimiterPrefix = "ghadelimiter_"

func newDelimiter() string {
	return delimiterPrefix + uuid.NewString()
}

// formatKeyValue renders name and value in the heredoc form accepted by the
// runner's file commands:
//
//	name<<ghadelimiter_<uuid>
//	value
//	ghadelimiter_<uuid>
func formatKeyValue(name, value, delimiter string) (string, error) {
	if strings.Contains(name, delimiter) {
		return "", fmt.Errorf("unexpected input: name should not contain the delimiter %q", delimiter)
	}
	if strings.Contains(value, delimiter) {
		return "", fmt.Errorf("unexpected input: value should not contain the delimiter %q", delimiter)
	}
	return name + "<<" + delimiter + "\n" + value + "\n" + delimiter, nil
}

// appendFileCommand appends message to the file command at path. The file
// must already exist; the runner creates it.
func appendFileCommand(path, message string) error {
	if err := fileutil.AppendLine(path, message); err != nil {
		return fmt.Errorf("file command failed: %w", err)
	}
	return nil
}
