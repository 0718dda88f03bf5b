// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"os"
	"strings"

	"github.com/snapdiff/snapdiff/pretty"
)

// BuildIgnores parses an --ignore specification string into a slice of
// dot paths. Empty entries are skipped.
func BuildIgnores(spec string) []string {
	// Don't prealloc because we don't know what len will be and performance is
	// not critical.
	//nolint:prealloc
	var paths []string

	// If there are no ignores specified, go home early.
	if spec == "" {
		return paths
	}

	// Default delimiter is ",", allow an override for situations where a path
	// contains commas.
	delim := ","
	if d, ok := os.LookupEnv("SNAPDIFF_IGNORE_DELIM"); ok {
		delim = d
	}

	for _, p := range strings.Split(spec, delim) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}

	return paths
}

// Prune returns a copy of v with every ignore path removed. Paths address
// mapping keys; a path that crosses a sequence is applied to each element.
// Paths that do not resolve are silently ignored.
func Prune(v pretty.Value, paths []string) pretty.Value {
	for _, p := range paths {
		v = prunePath(v, strings.Split(p, "."))
	}
	return v
}

func prunePath(v pretty.Value, segs []string) pretty.Value {
	if len(segs) == 0 {
		return v
	}

	switch v.Kind() {
	case pretty.KindMapping:
		entries := make([]pretty.Entry, 0, v.Len())
		for _, e := range v.Entries() {
			if e.Key == segs[0] {
				if len(segs) == 1 {
					// Drop the entry.
					continue
				}
				entries = append(entries, pretty.Entry{Key: e.Key, Val: prunePath(e.Val, segs[1:])})
				continue
			}
			entries = append(entries, e)
		}
		return pretty.Map(entries...)
	case pretty.KindSequence:
		items := make([]pretty.Value, 0, v.Len())
		for _, item := range v.Items() {
			items = append(items, prunePath(item, segs))
		}
		return pretty.Seq(items...)
	default:
		return v
	}
}
