// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
)

// Stat summarizes a diff by line class.
type Stat struct {
	Added     int
	Removed   int
	Unchanged int
	Annotated int
}

// Count tallies a diff's lines by their marker. Blank separator lines
// (the ones following annotations) are not counted.
func Count(diff string) Stat {
	var s Stat
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+ "):
			s.Added++
		case strings.HasPrefix(line, "- "):
			s.Removed++
		case strings.HasPrefix(line, "? "):
			s.Annotated++
		case strings.HasPrefix(line, "  "):
			s.Unchanged++
		}
	}
	return s
}

// Changed reports whether the diff contained any added or removed lines.
func (s Stat) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Render returns the --stat summary table.
func (s Stat) Render() string {
	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)

	rows := [][]string{
		{"added", strconv.Itoa(s.Added)},
		{"removed", strconv.Itoa(s.Removed)},
		{"unchanged", strconv.Itoa(s.Unchanged)},
		{"annotated", strconv.Itoa(s.Annotated)},
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(2)
			}
			return style
		}).
		Headers("lines", "count").
		BorderHeader(false).
		Rows(rows...)

	total := int64(s.Added + s.Removed + s.Unchanged)
	return t.String() + "\n" + headerStyle.Render("total "+humanize.Comma(total)) + "\n"
}
