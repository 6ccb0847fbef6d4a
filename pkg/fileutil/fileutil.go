// Package fileutil provides utility functions for working with file paths and file operations.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/githubnext/timeout-lint/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// DirExists reports whether path is an existing directory. A missing path or
// a non-directory is (false, nil); any other stat failure is returned.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to access %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// AppendLine appends line and a trailing newline to an existing file.
// The file is never created.
func AppendLine(path, line string) error {
	log.Printf("Appending %d bytes to %s", len(line)+1, path)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
