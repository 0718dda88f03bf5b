// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Pager opens the diff in an interactive full-screen pager. Keys: arrows
// and pgup/pgdn scroll, g/G jump to the ends, "/" starts an incremental
// search, n/N step through matches, q/esc quits.
func Pager(content string) error {
	p := tea.NewProgram(newPagerModel(content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var statusStyle = lipgloss.NewStyle().Reverse(true)

type pagerModel struct {
	lines     []string
	offset    int
	width     int
	height    int
	searching bool
	search    textinput.Model
	query     string
	matches   []int
	matchIdx  int
}

func newPagerModel(content string) pagerModel {
	input := textinput.New()
	input.Prompt = "/"

	return pagerModel{
		lines:    strings.Split(strings.TrimRight(content, "\n"), "\n"),
		width:    80,
		height:   24,
		search:   input,
		matchIdx: -1,
	}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m pagerModel) updateKeys(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.offset--
	case "down", "j":
		m.offset++
	case "pgup", "b":
		m.offset -= m.pageSize()
	case "pgdown", " ", "f":
		m.offset += m.pageSize()
	case "g", "home":
		m.offset = 0
	case "G", "end":
		m.offset = len(m.lines)
	case "/":
		m.searching = true
		m.search.SetValue("")
		m.search.Focus()
		return m, textinput.Blink
	case "n":
		m.stepMatch(1)
	case "N":
		m.stepMatch(-1)
	}
	m.clampOffset()
	return m, nil
}

func (m pagerModel) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "ctrl+c":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.query = m.search.Value()
		m.findMatches()
		m.stepMatch(1)
		m.clampOffset()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	return m, cmd
}

func (m pagerModel) View() string {
	visible := m.pageSize()

	var b strings.Builder
	for i := m.offset; i < m.offset+visible; i++ {
		if i < len(m.lines) {
			b.WriteString(runewidth.Truncate(m.lines[i], m.width, "…"))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m pagerModel) statusBar() string {
	if m.searching {
		return m.search.View()
	}

	status := fmt.Sprintf(" %d/%d ", m.offset+1, len(m.lines))
	if m.query != "" {
		which := 0
		if m.matchIdx >= 0 {
			which = m.matchIdx + 1
		}
		status += fmt.Sprintf("| /%s (%d/%d) ", m.query, which, len(m.matches))
	}
	status += "| q:quit /:search n/N:next/prev"
	return statusStyle.Render(runewidth.Truncate(status, m.width, ""))
}

// pageSize is the number of content rows, leaving one for the status bar.
func (m pagerModel) pageSize() int {
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

func (m *pagerModel) clampOffset() {
	max := len(m.lines) - m.pageSize()
	if max < 0 {
		max = 0
	}
	if m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *pagerModel) findMatches() {
	m.matches = nil
	m.matchIdx = -1
	if m.query == "" {
		return
	}
	for i, line := range m.lines {
		if strings.Contains(line, m.query) {
			m.matches = append(m.matches, i)
		}
	}
}

// stepMatch advances dir (+1/-1) through the match list, wrapping, and
// scrolls the match into view.
func (m *pagerModel) stepMatch(dir int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + dir + len(m.matches)) % len(m.matches)
	m.offset = m.matches[m.matchIdx]
	m.clampOffset()
}
