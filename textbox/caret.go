package textbox

import (
	"regexp"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// blankLineBoundary matches a line break followed by another one or by the
// end of the text. Selections lose one rune per match compared to the raw
// text, so these are added back when testing for a full selection.
var blankLineBoundary = regexp.MustCompile(`\n(\n|$)`)

// Caret returns the caret offset: the end of the current range, or 0 when
// the region holds no range.
func (m Model) Caret() int {
	if m.region == nil {
		return 0
	}
	return m.caretOffset()
}

// CaretOnLastLine reports whether a collapsed caret is drawn on the last
// visual row of the focused region.
func (m Model) CaretOnLastLine() bool {
	if m.region == nil {
		return false
	}
	return m.caretOnLastLine()
}

// AllSelected reports whether the selection covers the whole content.
func (m Model) AllSelected() bool {
	if m.region == nil {
		return false
	}
	return m.allSelected()
}

func (m *Model) caretOffset() int {
	rng, ok := m.region.Selection()
	if !ok {
		return 0
	}
	return rng.End()
}

func (m *Model) caretOnLastLine() bool {
	r := m.region
	if !r.Focused() {
		return false
	}
	rng, ok := r.Selection()
	if !ok || !rng.Collapsed() {
		return false
	}
	return r.RowOf(rng.Focus) == r.RowOf(r.Len())
}

func (m *Model) allSelected() bool {
	rng, ok := m.region.Selection()
	if !ok {
		return false
	}
	total := m.region.Len()
	if rng.Start() == 0 && rng.End() == total {
		return true
	}
	blanks := len(blankLineBoundary.FindAllStringIndex(m.region.Text(), -1))
	return rng.Len()+blanks == total
}

// setCaret collapses the selection at off. An empty region has nothing to
// place a caret in, so it is focused instead.
func (m *Model) setCaret(off int) {
	if m.region.Empty() {
		m.focus()
		return
	}
	m.region.Collapse(off)
}

func (m *Model) caretToEnd() {
	if m.region.Empty() {
		return
	}
	m.region.Collapse(m.region.Len())
}

// scrollFollow scrolls to the top when moving up from the very start, and to
// the bottom when moving down or breaking a line on the last row.
func (m *Model) scrollFollow(msg tea.KeyMsg) {
	if m.region == nil || !m.region.Focused() {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.caretOffset() == 0 {
			m.region.ScrollToTop()
		}
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Enter):
		if m.caretOnLastLine() {
			m.region.ScrollToBottom()
		}
	}
}
