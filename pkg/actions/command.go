// Package actions writes GitHub Actions workflow commands and step outputs.
package actions

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// escapeData escapes a workflow command message.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// escapeProperty escapes a workflow command property value.
func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")
	return s
}

// Command is a single workflow command such as ::error file=a.yml::message.
type Command struct {
	Name       string
	Properties map[string]string
	Message    string
}

// String renders the command line without a trailing newline. Properties are
// written in key order.
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString("::")
	sb.WriteString(c.Name)

	if len(c.Properties) > 0 {
		keys := make([]string, 0, len(c.Properties))
		for k, v := range c.Properties {
			if v != "" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i == 0 {
				sb.WriteString(" ")
			} else {
				sb.WriteString(",")
			}
			fmt.Fprintf(&sb, "%s=%s", k, escapeProperty(c.Properties[k]))
		}
	}

	sb.WriteString("::")
	sb.WriteString(escapeData(c.Message))
	return sb.String()
}

// Issue writes the command to w followed by a newline.
func Issue(w io.Writer, c Command) error {
	_, err := fmt.Fprintln(w, c.String())
	return err
}
