package workflow

import (
	"fmt"
	"math"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

var kindNames = map[Kind]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindNumber:   "number",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a decoded YAML node: null, bool, number, string, sequence or mapping.
// The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	str     string
	seq     []Value
	mapping *Mapping
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number returns a numeric Value. NaN and infinities are kept as-is.
func Number(n float64) Value { return Value{kind: KindNumber, number: n} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Sequence returns a sequence Value holding items.
func Sequence(items ...Value) Value { return Value{kind: KindSequence, seq: items} }

// MappingValue wraps m as a Value. A nil m is treated as an empty mapping.
func MappingValue(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: KindMapping, mapping: m}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBool }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.number, v.kind == KindNumber }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsSequence returns the items held by v.
func (v Value) AsSequence() ([]Value, bool) { return v.seq, v.kind == KindSequence }

// AsMapping returns the mapping held by v.
func (v Value) AsMapping() (*Mapping, bool) { return v.mapping, v.kind == KindMapping }

// Truthy reports whether v counts as set: null, false, 0, NaN and "" do not;
// every sequence and mapping does, even when empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number != 0 && !math.IsNaN(v.number)
	case KindString:
		return v.str != ""
	case KindSequence, KindMapping:
		return true
	default:
		return false
	}
}

// Mapping is an insertion-ordered string-keyed map.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set stores value under key. A repeated key keeps its original position.
func (m *Mapping) Set(key string, value Value) *Mapping {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// All iterates the entries in insertion order.
func (m *Mapping) All(yield func(string, Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !yield(k, m.values[k]) {
			return
		}
	}
}
