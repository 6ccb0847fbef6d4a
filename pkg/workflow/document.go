package workflow

import "github.com/githubnext/timeout-lint/pkg/constants"

// Document is one decoded workflow file. It only lives while that file is
// being checked.
type Document struct {
	root Value
}

// NewDocument wraps a decoded root value.
func NewDocument(root Value) *Document {
	return &Document{root: root}
}

// Root returns the decoded top-level value.
func (d *Document) Root() Value {
	return d.root
}

// Name returns the workflow's top-level name when it is a string.
func (d *Document) Name() (string, bool) {
	m, ok := d.root.AsMapping()
	if !ok {
		return "", false
	}
	v, ok := m.Get(constants.JobNameKey)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Jobs returns the jobs mapping. ok is false when the root is not a mapping
// or when jobs is missing or holds anything other than a mapping.
func (d *Document) Jobs() (*Mapping, bool) {
	m, ok := d.root.AsMapping()
	if !ok {
		return nil, false
	}
	v, ok := m.Get(constants.JobsKey)
	if !ok {
		return nil, false
	}
	return v.AsMapping()
}
