//go:build !integration

package actions

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		name    string
		command Command
		want    string
	}{
		{
			name:    "message only",
			command: Command{Name: "error", Message: "boom"},
			want:    "::error::boom",
		},
		{
			name:    "empty message",
			command: Command{Name: "endgroup"},
			want:    "::endgroup::",
		},
		{
			name:    "message escaping",
			command: Command{Name: "error", Message: "100% done\r\nnext line"},
			want:    "::error::100%25 done%0D%0Anext line",
		},
		{
			name:    "colons in message are kept",
			command: Command{Name: "group", Message: "File: .github/workflows/ci.yml"},
			want:    "::group::File: .github/workflows/ci.yml",
		},
		{
			name: "properties are sorted and escaped",
			command: Command{
				Name:       "error",
				Properties: map[string]string{"title": "a,b:c", "file": "ci.yml", "line": ""},
				Message:    "msg",
			},
			want: "::error file=ci.yml,title=a%2Cb%3Ac::msg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.command.String())
		})
	}
}

func TestIssue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Issue(&buf, Command{Name: "debug", Message: "hello"}))
	assert.Equal(t, "::debug::hello\n", buf.String(), "Issue should terminate the command with a newline")
}
