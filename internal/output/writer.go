// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	removedStyle    = color.New(color.FgRed)
	addedStyle      = color.New(color.FgGreen)
	annotationStyle = color.New(color.FgCyan)
)

// Render writes dump or diff text to w honoring the --color mode
// (auto|always|never; auto defers to the library's TTY detection). A
// trailing newline is added when the text doesn't carry one. If w is nil,
// os.Stdout is used.
func Render(w io.Writer, text string, mode string) {
	if w == nil {
		w = os.Stdout
	}

	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		fmt.Fprint(w, colorizeLine(line))
	}
}

func colorizeLine(line string) string {
	switch {
	case strings.HasPrefix(line, "- "):
		return removedStyle.Sprint(strings.TrimSuffix(line, "\n")) + "\n"
	case strings.HasPrefix(line, "+ "):
		return addedStyle.Sprint(strings.TrimSuffix(line, "\n")) + "\n"
	case strings.HasPrefix(line, "? "):
		return annotationStyle.Sprint(strings.TrimSuffix(line, "\n")) + "\n"
	default:
		return line
	}
}
