// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/snapdiff/snapdiff/pretty"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Drill navigates a value using a flexible dot path supporting sequences.
// Segments address mapping keys; "[N]" selects a sequence element and a
// bare key addressing a single-element sequence unwraps it. Returns false
// when the path does not resolve.
func Drill(v pretty.Value, path string) (pretty.Value, bool) {
	if path == "" {
		return v, true
	}

	current := v
	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return pretty.Value{}, false // Invalid path segment
		}

		key := matches[1]

		// matches[2] is the [], which we can throw away.

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			// Sequence index specified
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return pretty.Value{}, false
			}
			index = i
		}

		if current.Kind() != pretty.KindMapping {
			return pretty.Value{}, false
		}
		val, ok := current.Get(key)
		if !ok {
			return pretty.Value{}, false
		}

		if val.Kind() == pretty.KindSequence {
			items := val.Items()
			switch {
			case index == -1:
				if len(items) == 1 && matches[2] == "" {
					val = items[0]
				}
				// Otherwise keep the whole sequence.
			case index >= 0 && index < len(items):
				val = items[index]
			default:
				return pretty.Value{}, false
			}
		} else if index >= 0 {
			// Indexing into a non-sequence.
			return pretty.Value{}, false
		}

		current = val
	}

	return current, true
}
