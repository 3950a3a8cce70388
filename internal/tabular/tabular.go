// Package tabular wraps the decoded TOML document in an explicit tagged
// variant so consumers switch exhaustively on value shape instead of
// type-asserting interface{} all over the engine.
package tabular

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	}
	return "unknown"
}

// Value is one node of the decoded document tree.
type Value struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
	b    bool
	arr  []Value
	tab  map[string]Value
}

// Decode parses a TOML document into a Value tree. The root is always a
// table. Syntax errors come back verbatim from the TOML parser.
func Decode(data []byte) (Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return fromAny(raw)
}

func fromAny(v any) (Value, error) {
	switch t := v.(type) {
	case string:
		return Value{kind: KindString, str: t}, nil
	case int64:
		return Value{kind: KindInteger, i64: t}, nil
	case int:
		return Value{kind: KindInteger, i64: int64(t)}, nil
	case float64:
		return Value{kind: KindFloat, f64: t}, nil
	case bool:
		return Value{kind: KindBool, b: t}, nil
	case []any:
		arr := make([]Value, 0, len(t))
		for _, item := range t {
			child, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, child)
		}
		return Value{kind: KindArray, arr: arr}, nil
	case []map[string]any:
		// TOML arrays of tables decode with a concrete element type.
		arr := make([]Value, 0, len(t))
		for _, item := range t {
			child, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, child)
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]any:
		tab := make(map[string]Value, len(t))
		for key, item := range t {
			child, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			tab[key] = child
		}
		return Value{kind: KindTable, tab: tab}, nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the string payload, or false for any other shape.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the numeric payload as a float64. Integers promote.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.i64), true
	case KindFloat:
		return v.f64, true
	}
	return 0, false
}

// AsBool returns the boolean payload, or false for any other shape.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsArray returns the element slice, or false for any other shape.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsTable returns the key/value map, or false for any other shape.
func (v Value) AsTable() (map[string]Value, bool) {
	if v.kind != KindTable {
		return nil, false
	}
	return v.tab, true
}
