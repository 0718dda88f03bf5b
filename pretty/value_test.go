// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package pretty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNative(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"int", 7, Int(7)},
		{"int64", int64(-9), Int(-9)},
		{"uint32", uint32(12), Int(12)},
		{"uint64 in range", uint64(12), Int(12)},
		{"float32", float32(0.5), Float(0.5)},
		{"float64", 1.25, Float(1.25)},
		{"string", "s", Str("s")},
		{"slice", []any{1, "two", nil}, Seq(Int(1), Str("two"), Null())},
		{"value passthrough", Int(3), Int(3)},
		{"value slice", []Value{Int(1)}, Seq(Int(1))},
		{"entry slice", []Entry{{Key: "k", Val: Int(1)}}, Map(Entry{Key: "k", Val: Int(1)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromNative(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromNativeMapKeysSorted(t *testing.T) {
	// Go maps have no stable iteration order, so the adapter sorts keys
	// for deterministic output.
	got, err := FromNative(map[string]any{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)

	want := Map(
		Entry{Key: "a", Val: Int(1)},
		Entry{Key: "b", Val: Int(2)},
		Entry{Key: "c", Val: Int(3)},
	)
	assert.Equal(t, want, got)
}

func TestFromNativeUnsupported(t *testing.T) {
	tests := []any{
		struct{}{},
		make(chan int),
		func() {},
		map[int]any{1: "x"},
	}

	for _, in := range tests {
		_, err := FromNative(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	}
}

func TestFromNativeUintOverflow(t *testing.T) {
	_, err := FromNative(uint64(math.MaxUint64))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestMapDeduplicatesKeys(t *testing.T) {
	// First position wins, last value wins.
	got := Map(
		Entry{Key: "a", Val: Int(1)},
		Entry{Key: "b", Val: Int(2)},
		Entry{Key: "a", Val: Int(3)},
	)

	assert.Equal(t, 2, got.Len())
	assert.Equal(t, "a", got.Entries()[0].Key)
	v, ok := got.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(3), v)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    Value
		b    Value
		want bool
	}{
		{"null null", Null(), Null(), true},
		{"null vs int", Null(), Int(0), false},
		{"int float same value", Int(1), Float(1.0), true},
		{"float int same value", Float(2.0), Int(2), true},
		{"int float different value", Int(1), Float(1.5), false},
		{"string case", Str("a"), Str("A"), false},
		{"seq elementwise", Seq(Int(1), Float(2.0)), Seq(Float(1.0), Int(2)), true},
		{"seq length", Seq(Int(1)), Seq(Int(1), Int(2)), false},
		{
			"mapping order insensitive",
			Map(Entry{Key: "a", Val: Int(1)}, Entry{Key: "b", Val: Int(2)}),
			Map(Entry{Key: "b", Val: Int(2)}, Entry{Key: "a", Val: Int(1)}),
			true,
		},
		{
			"mapping value mismatch",
			Map(Entry{Key: "a", Val: Int(1)}),
			Map(Entry{Key: "a", Val: Int(2)}),
			false,
		},
		{"bool vs int", Bool(true), Int(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			// Equality is symmetric.
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	m := Map(Entry{Key: "k", Val: Str("v")})

	assert.Equal(t, KindMapping, m.Kind())
	assert.Equal(t, 1, m.Len())

	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v.StrVal())

	_, ok = m.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, float64(3), Int(3).FloatVal())
	assert.True(t, Value{}.IsNull())
}
