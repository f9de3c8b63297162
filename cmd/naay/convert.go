package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/naay-lang/naay"
)

// toGoValue converts a naay.Value plain projection into a plain Go
// value (map[string]any / []any / string) that encoding/json and
// expr-lang/expr both understand natively.
func toGoValue(v naay.Value) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return x
	case []naay.Value:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = toGoValue(e)
		}
		return out
	case *naay.Map:
		out := make(map[string]any, len(x.Keys()))
		for _, k := range x.Keys() {
			e, _ := x.Get(k)
			out[k] = toGoValue(e)
		}
		return out
	default:
		return fmt.Sprintf("%v", x)
	}
}

// marshalGoJSON marshals an arbitrary Go value, such as an
// expr-lang/expr evaluation result, to JSON.
func marshalGoJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// marshalOrderedJSON marshals a naay.Value preserving map key order, by
// walking the tree itself rather than going through a Go map (whose
// iteration order json.Marshal does not guarantee).
func marshalOrderedJSON(v naay.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeOrderedJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeOrderedJSON(buf *bytes.Buffer, v naay.Value) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case string:
		d, err := json.Marshal(x)
		if err != nil {
			return err
		}
		buf.Write(d)
		return nil
	case []naay.Value:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeOrderedJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case *naay.Map:
		buf.WriteByte('{')
		for i, k := range x.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			kd, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kd)
			buf.WriteByte(':')
			e, _ := x.Get(k)
			if err := writeOrderedJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("naay: cannot marshal %T to JSON", v)
	}
}
