// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pretty

import "fmt"

// Flatten collapses every nested mapping of v into a single-level mapping
// whose keys are the dot-joined paths of the original nesting. Non-mapping
// values pass through unchanged, sequences are never descended into, and the
// result keeps first-seen key order. Two paths resolving to the same flat
// key fail with ErrKeyCollision; a deliberate fail-fast, since a tool whose
// job is to show differences must not silently drop one of them.
//
// A non-mapping input is returned as-is.
func Flatten(v Value) (Value, error) {
	if v.kind != KindMapping {
		return v, nil
	}

	var out []Entry
	seen := make(map[string]bool)

	var walk func(prefix string, entries []Entry, depth int) error
	walk = func(prefix string, entries []Entry, depth int) error {
		if depth > maxDepth {
			return fmt.Errorf("flatten depth %d: %w", depth, ErrTooDeep)
		}
		for _, e := range entries {
			key := e.Key
			if prefix != "" {
				key = prefix + "." + e.Key
			}
			if e.Val.kind == KindMapping {
				if err := walk(key, e.Val.entries, depth+1); err != nil {
					return err
				}
				continue
			}
			if seen[key] {
				return fmt.Errorf("flattened key %q: %w", key, ErrKeyCollision)
			}
			seen[key] = true
			out = append(out, Entry{Key: key, Val: e.Val})
		}
		return nil
	}

	if err := walk("", v.entries, 0); err != nil {
		return Value{}, err
	}
	return Value{kind: KindMapping, entries: out}, nil
}
