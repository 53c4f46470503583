package textbox

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/editable/internal/grapheme"
)

// View renders the visible rows followed by the "N/max" counter when a
// length cap is enforced.
func (m Model) View() string {
	if m.region == nil {
		return ""
	}
	body := m.viewport.View()
	max := m.maxLength()
	if max == 0 {
		return body
	}
	counter := m.cfg.Style.Counter.Render(fmt.Sprintf("%d/%d", utf8.RuneCountInString(m.content), max))
	return lipgloss.JoinHorizontal(lipgloss.Top, body, " ", counter)
}

// counterWidth is the space the counter takes next to the text.
func (m *Model) counterWidth() int {
	max := m.maxLength()
	if max == 0 {
		return 0
	}
	return 1 + len(fmt.Sprintf("%d/%d", max, max))
}

// renderContent renders every visual row of the region, one per line.
func (m Model) renderContent() string {
	st := m.cfg.Style
	r := m.region
	text := st.Text
	if m.cfg.Disabled {
		text = st.Disabled
	}

	showCursor := r.Focused() && !m.cfg.Disabled
	rng, hasRange := r.Selection()
	selStart, selEnd := 0, 0
	if hasRange && !rng.Collapsed() {
		selStart, selEnd = rng.Start(), rng.End()
	}
	caret, caretRow := -1, -1
	if showCursor && hasRange && rng.Collapsed() {
		caret = rng.Focus
		caretRow = r.RowOf(caret)
	}

	if r.Empty() {
		var sb strings.Builder
		if caret == 0 {
			sb.WriteString(st.Cursor.Render(" "))
		}
		if m.cfg.Placeholder != "" {
			sb.WriteString(st.Placeholder.Render(m.cfg.Placeholder))
		}
		return sb.String()
	}

	runes := []rune(r.Text())
	rows := r.Rows()
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		var sb strings.Builder
		off, col := row.Start, 0
		for _, c := range grapheme.Clusters(string(runes[row.Start:row.End])) {
			w := grapheme.Width(c.Text, col)
			cell := c.Text
			if c.Text == "\t" {
				cell = strings.Repeat(" ", w)
			}
			switch {
			case i == caretRow && off == caret:
				sb.WriteString(st.Cursor.Render(cell))
			case off >= selStart && off < selEnd:
				sb.WriteString(st.Selection.Render(cell))
			default:
				sb.WriteString(text.Render(cell))
			}
			off += c.Runes
			col += w
		}
		if i == caretRow && caret == row.End {
			sb.WriteString(st.Cursor.Render(" "))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
