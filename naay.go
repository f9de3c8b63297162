// Package naay loads and dumps the naay data format: a small,
// strict, indentation-based subset of block-style YAML with a
// mandatory version preamble, anchors/aliases, and a merge key.
package naay

import (
	"fmt"

	"github.com/naay-lang/naay/encode"
	"github.com/naay-lang/naay/ir"
	"github.com/naay-lang/naay/parse"
)

// PreambleKey is the reserved first key every document's root mapping
// must carry.
const PreambleKey = parse.PreambleKey

// RequiredVersion is the exact preamble value this loader accepts.
const RequiredVersion = parse.RequiredVersion

// Error is the error type returned by Loads and Dumps. Its Kind is one
// of the stable identifiers in package ir (ir.IndentTabs,
// ir.DuplicateKey, ir.VersionMismatch, and so on); callers compare
// against those with errors.As or errors.Is(err, ir.KindErr(kind)).
type Error = ir.Error

// Loads parses text into a Node tree, enforcing the version preamble.
func Loads(text []byte) (*ir.Node, error) {
	return parse.Parse(text)
}

// Dumps serializes tree back to text. Pass encode.Option values (for
// example encode.WithColors) to control formatting.
func Dumps(tree *ir.Node, opts ...encode.Option) ([]byte, error) {
	return encode.Encode(tree, opts...)
}

// Value is the plain projection of a Node: a string, a []Value, or a
// *Map, with all comment and anchor/alias metadata dropped.
type Value any

// Map is an insertion-ordered string-keyed mapping, the plain
// projection of an ir.Node with Kind == ir.MapKind.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty insertion-ordered Map.
func NewMap() *Map {
	return &Map{values: map[string]Value{}}
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set inserts or overwrites key, preserving its original position on
// overwrite and appending on first insertion.
func (m *Map) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Plain projects tree into its value-semantics-only form: *Map for a
// mapping, []Value for a sequence, string for a scalar.
func Plain(tree *ir.Node) (Value, error) {
	if tree == nil {
		return nil, nil
	}
	switch tree.Kind {
	case ir.StrKind:
		return tree.Str, nil
	case ir.SeqKind:
		out := make([]Value, len(tree.Seq))
		for i, e := range tree.Seq {
			v, err := Plain(e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case ir.MapKind:
		m := NewMap()
		for _, e := range tree.Map {
			v, err := Plain(e.Value)
			if err != nil {
				return nil, err
			}
			m.Set(e.Key, v)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("naay: unknown node kind %v", tree.Kind)
	}
}
