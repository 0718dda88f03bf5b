// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pretty

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Flag adjusts how Dump and Diff render their input. Flags combine with
// bitwise or.
type Flag uint8

const (
	// FlatDict collapses nested mappings into dot-joined keys before
	// rendering or diffing.
	FlatDict Flag = 1 << iota

	// DumpEquals makes Diff emit the full canonical dump, prefixed as
	// unchanged, when the two values are equal.
	DumpEquals
)

// None is the empty flag set.
const None Flag = 0

const indentStep = 2

// Dump renders a value into its canonical indented form. Sequences and
// mappings span multiple lines with two-space indentation per level; empty
// containers render as "[]" and "{}". With FlatDict set, a mapping is
// flattened first.
func Dump(v Value, flags Flag) (string, error) {
	if flags&FlatDict != 0 && v.kind == KindMapping {
		fv, err := Flatten(v)
		if err != nil {
			return "", err
		}
		v = fv
	}

	var b strings.Builder
	if err := writeValue(&b, v, 0, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeValue(b *strings.Builder, v Value, indent, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("dump depth %d: %w", depth, ErrTooDeep)
	}

	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b.WriteString(formatFloat(v.f))
	case KindString:
		b.Write(gjson.AppendJSONString(nil, v.s))
	case KindSequence:
		if len(v.seq) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[\n")
		pad := strings.Repeat(" ", indent+indentStep)
		for i, item := range v.seq {
			b.WriteString(pad)
			if err := writeValue(b, item, indent+indentStep, depth+1); err != nil {
				return err
			}
			if i < len(v.seq)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteByte(']')
	case KindMapping:
		if len(v.entries) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteString("{\n")
		pad := strings.Repeat(" ", indent+indentStep)
		for i, e := range v.entries {
			b.WriteString(pad)
			b.Write(gjson.AppendJSONString(nil, e.Key))
			b.WriteString(": ")
			if err := writeValue(b, e.Val, indent+indentStep, depth+1); err != nil {
				return err
			}
			if i < len(v.entries)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteByte('}')
	}

	return nil
}

// formatFloat renders the shortest round-tripping decimal form of f. An
// integral value keeps one fractional digit ("1.0"); fixed notation is used
// for decimal exponents in [-4, 15] and scientific notation beyond, so
// 1e15 renders as digits while 1e16 renders as "1e+16".
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp > 15 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
