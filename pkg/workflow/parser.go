package workflow

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/githubnext/timeout-lint/pkg/logger"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

var parserLog = logger.New("workflow:parser")

// ErrUnparseable is wrapped by every error returned from ParseFile and
// ParseBytes. Callers skip the file rather than abort the run.
var ErrUnparseable = errors.New("unable to parse YAML")

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseFile reads and decodes the workflow file at path.
func ParseFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		parserLog.Printf("Failed to read %s: %v", path, err)
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrUnparseable, path, err)
	}

	doc, err := ParseBytes(content)
	if err != nil {
		parserLog.Printf("Failed to parse %s: %v", path, err)
		return nil, err
	}
	parserLog.Printf("Parsed %s (%d bytes)", path, len(content))
	return doc, nil
}

// ParseBytes decodes a single YAML document. Empty or null documents and
// multi-document streams are rejected along with syntax errors. A leading
// byte order mark is ignored.
func ParseBytes(content []byte) (*Document, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	file, err := parser.ParseBytes(content, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	body, err := singleDocumentBody(file)
	if err != nil {
		return nil, err
	}

	root, err := newNodeConverter().value(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	if root.IsNull() {
		return nil, fmt.Errorf("%w: document is empty", ErrUnparseable)
	}
	return NewDocument(root), nil
}

func singleDocumentBody(file *ast.File) (ast.Node, error) {
	var body ast.Node
	count := 0
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if _, isComment := doc.Body.(*ast.CommentGroupNode); isComment {
			continue
		}
		body = doc.Body
		count++
	}

	switch {
	case count == 0:
		return nil, fmt.Errorf("%w: document is empty", ErrUnparseable)
	case count > 1:
		return nil, fmt.Errorf("%w: found %d documents, expected one", ErrUnparseable, count)
	}
	return body, nil
}
