//go:build !integration

package actions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKeyValue(t *testing.T) {
	got, err := formatKeyValue("message", "line one\nline two", "ghadelimiter_test")
	require.NoError(t, err)
	assert.Equal(t, "message<<ghadelimiter_test\nline one\nline two\nghadelimiter_test", got)
}

func TestFormatKeyValue_DelimiterCollision(t *testing.T) {
	_, err := formatKeyValue("message", "oops ghadelimiter_test", "ghadelimiter_test")
	require.Error(t, err, "A value containing the delimiter must be rejected")

	_, err = formatKeyValue("ghadelimiter_test", "value", "ghadelimiter_test")
	require.Error(t, err, "A name containing the delimiter must be rejected")
}

func TestNewDelimiter(t *testing.T) {
	first := newDelimiter()
	second := newDelimiter()

	assert.True(t, strings.HasPrefix(first, delimiterPrefix), "Delimiter should use the runner prefix")
	assert.NotEqual(t, first, second, "Delimiters should be unique")
}

func TestAppendFileCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0o644))

	require.NoError(t, appendFileCommand(path, "a<<EOF\nb\nEOF"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing=1\na<<EOF\nb\nEOF\n", string(content), "Commands should be appended")
}

func TestAppendFileCommand_MissingFile(t *testing.T) {
	err := appendFileCommand(filepath.Join(t.TempDir(), "missing"), "a=b")
	require.Error(t, err, "The runner-provided file must already exist")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
