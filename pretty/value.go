// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pretty

import (
	"errors"
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Kind identifies which member of the value model a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

var (
	// ErrUnsupportedType reports a host value outside the closed model.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrKeyCollision reports two distinct nesting paths flattening to the
	// same dot-joined key.
	ErrKeyCollision = errors.New("key collision")

	// ErrTooDeep reports input nested beyond the recursion bound.
	ErrTooDeep = errors.New("value nested too deeply")
)

// maxDepth bounds recursion in Dump and Flatten so adversarially nested
// input fails with ErrTooDeep instead of exhausting the stack.
const maxDepth = 10000

// Entry is a single key/value pair of a mapping. Entries keep the order in
// which they were inserted.
type Entry struct {
	Key string
	Val Value
}

// Value is one node of the closed value model. The zero Value is null.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	seq     []Value
	entries []Entry
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInteger, i: i} }

// Float returns a float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Seq returns a sequence value holding the given items in order.
func Seq(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// Map returns a mapping value holding the given entries in order. A repeated
// key keeps its first position but takes the last value, matching how an
// insertion-ordered dictionary behaves on re-assignment.
func Map(entries ...Entry) Value {
	out := make([]Entry, 0, len(entries))
	at := make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := at[e.Key]; ok {
			out[i].Val = e.Val
			continue
		}
		at[e.Key] = len(out)
		out = append(out, e)
	}
	return Value{kind: KindMapping, entries: out}
}

// FromNative converts a host value into the model. Supported inputs are nil,
// bool, every integer width, float32/64, string, []any, map[string]any
// (keys are sorted because Go maps have no stable order), []Value, []Entry
// and Value itself. Anything else fails with ErrUnsupportedType.
func FromNative(v any) (Value, error) {
	switch n := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return n, nil
	case bool:
		return Bool(n), nil
	case int:
		return Int(int64(n)), nil
	case int8:
		return Int(int64(n)), nil
	case int16:
		return Int(int64(n)), nil
	case int32:
		return Int(int64(n)), nil
	case int64:
		return Int(n), nil
	case uint:
		return uintValue(uint64(n))
	case uint8:
		return Int(int64(n)), nil
	case uint16:
		return Int(int64(n)), nil
	case uint32:
		return Int(int64(n)), nil
	case uint64:
		return uintValue(n)
	case float32:
		return Float(float64(n)), nil
	case float64:
		return Float(n), nil
	case string:
		return Str(n), nil
	case []Value:
		return Seq(n...), nil
	case []Entry:
		return Map(n...), nil
	case []any:
		items := make([]Value, 0, len(n))
		for _, item := range n {
			cv, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, cv)
		}
		return Seq(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			cv, err := FromNative(n[k])
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, Entry{Key: k, Val: cv})
		}
		return Map(entries...), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func uintValue(u uint64) (Value, error) {
	i, err := safecast.Conv[int64](u)
	if err != nil {
		return Value{}, fmt.Errorf("%w: uint64 %d overflows integer", ErrUnsupportedType, u)
	}
	return Int(i), nil
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolVal returns the bool payload; false for other kinds.
func (v Value) BoolVal() bool { return v.b }

// IntVal returns the integer payload; 0 for other kinds.
func (v Value) IntVal() int64 { return v.i }

// FloatVal returns the float payload. For an integer value it returns the
// integer converted to float64.
func (v Value) FloatVal() float64 {
	if v.kind == KindInteger {
		return float64(v.i)
	}
	return v.f
}

// StrVal returns the string payload; "" for other kinds.
func (v Value) StrVal() string { return v.s }

// Items returns the elements of a sequence; nil for other kinds.
func (v Value) Items() []Value { return v.seq }

// Entries returns the entries of a mapping in insertion order; nil for
// other kinds.
func (v Value) Entries() []Entry { return v.entries }

// Len returns the element count of a sequence or mapping, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.entries)
	}
	return 0
}

// Get looks up a mapping entry by key.
func (v Value) Get(key string) (Value, bool) {
	for _, e := range v.entries {
		if e.Key == key {
			return e.Val, true
		}
	}
	return Value{}, false
}

// Equal reports semantic equality between two values. An integer and a float
// of the same numeric value are equal, sequences compare element-wise, and
// mappings compare by key/value pairs regardless of insertion order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		if numericKinds(v.kind, o.kind) {
			return v.FloatVal() == o.FloatVal()
		}
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInteger:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for _, e := range v.entries {
			ov, ok := o.Get(e.Key)
			if !ok || !e.Val.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

func numericKinds(a, b Kind) bool {
	return (a == KindInteger && b == KindFloat) || (a == KindFloat && b == KindInteger)
}
