// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/snapdiff/snapdiff/pretty"
)

// decodeTOML decodes into a plain map and then reorders it using the
// MetaData key list, which records keys in the order they were defined
// in the file.
func decodeTOML(data []byte) (pretty.Value, error) {
	var raw map[string]interface{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return pretty.Value{}, fmt.Errorf("invalid TOML document: %w", err)
	}
	return fromTOML(raw, nil, newKeyOrder(md.Keys())), nil
}

// keyOrder maps a table path to its child keys in file order.
type keyOrder map[string][]string

func newKeyOrder(keys []toml.Key) keyOrder {
	ord := keyOrder{}
	seen := map[string]map[string]bool{}
	for _, k := range keys {
		parent := strings.Join(k[:len(k)-1], "\x00")
		child := k[len(k)-1]
		if seen[parent] == nil {
			seen[parent] = map[string]bool{}
		}
		if !seen[parent][child] {
			seen[parent][child] = true
			ord[parent] = append(ord[parent], child)
		}
	}
	return ord
}

func fromTOML(v interface{}, path []string, ord keyOrder) pretty.Value {
	switch tv := v.(type) {
	case map[string]interface{}:
		entries := make([]pretty.Entry, 0, len(tv))
		remaining := make(map[string]bool, len(tv))
		for k := range tv {
			remaining[k] = true
		}
		for _, k := range ord[strings.Join(path, "\x00")] {
			if !remaining[k] {
				continue
			}
			delete(remaining, k)
			entries = append(entries, pretty.Entry{Key: k, Val: fromTOML(tv[k], append(path, k), ord)})
		}
		// Keys the metadata did not cover come last, sorted for determinism.
		leftover := make([]string, 0, len(remaining))
		for k := range remaining {
			leftover = append(leftover, k)
		}
		sort.Strings(leftover)
		for _, k := range leftover {
			entries = append(entries, pretty.Entry{Key: k, Val: fromTOML(tv[k], append(path, k), ord)})
		}
		return pretty.Map(entries...)
	case []map[string]interface{}:
		// Array of tables. Elements share the array's path, so their key
		// order comes from the first appearance of each key in the file.
		items := make([]pretty.Value, 0, len(tv))
		for _, elem := range tv {
			items = append(items, fromTOML(elem, path, ord))
		}
		return pretty.Seq(items...)
	case []interface{}:
		items := make([]pretty.Value, 0, len(tv))
		for _, elem := range tv {
			items = append(items, fromTOML(elem, path, ord))
		}
		return pretty.Seq(items...)
	case nil:
		return pretty.Null()
	case bool:
		return pretty.Bool(tv)
	case int64:
		return pretty.Int(tv)
	case float64:
		return pretty.Float(tv)
	case string:
		return pretty.Str(tv)
	case time.Time:
		return pretty.Str(tv.Format(time.RFC3339))
	default:
		// TOML has no other value types; stringify to stay total.
		return pretty.Str(fmt.Sprintf("%v", tv))
	}
}
