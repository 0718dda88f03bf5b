// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pretty

import "strings"

// Diff renders the structural difference between two values as an annotated
// line diff. Equal values (per Value.Equal, so 1.0 and 1 never differ)
// produce an empty string, or the full canonical dump with unchanged
// prefixes when DumpEquals is set. Removed lines carry "- ", added lines
// "+ ", unchanged lines "  ", and annotation lines "? ".
func Diff(oldV, newV Value, flags Flag) (string, error) {
	if oldV.Equal(newV) {
		if flags&DumpEquals == 0 {
			return "", nil
		}
		text, err := Dump(newV, flags)
		if err != nil {
			return "", err
		}
		return strings.Join(tagLines("  ", strings.Split(text, "\n")), "\n"), nil
	}

	oldText, err := Dump(oldV, flags)
	if err != nil {
		return "", err
	}
	newText, err := Dump(newV, flags)
	if err != nil {
		return "", err
	}

	lines := compareLines(strings.Split(oldText, "\n"), strings.Split(newText, "\n"))
	return strings.Join(lines, "\n"), nil
}
