package textbox

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/editable/region"
)

// handleMouse scrolls on the wheel and places the caret on a left click.
// Coordinates are relative to the text area: (0,0) is its top-left cell.
//
// A click inside the area focuses the region. Shift extends the selection;
// dragging with the button held selects from the press point.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	r := m.region
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			r.SetScrollTop(r.ScrollTop() - 1)
			return
		case tea.MouseButtonWheelDown:
			r.SetScrollTop(r.ScrollTop() + 1)
			return
		case tea.MouseButtonLeft:
		default:
			return
		}
		if !m.inBounds(msg.X, msg.Y) {
			return
		}
		m.focus()
		if m.cfg.Disabled {
			return
		}

		off := r.OffsetAt(msg.X, msg.Y)
		anchor := off
		if rng, ok := r.Selection(); ok && msg.Shift {
			anchor = rng.Anchor
		}
		r.SetSelection(region.Range{Anchor: anchor, Focus: off})
		m.dragging = true
		m.dragAnchor = anchor

	case tea.MouseActionMotion:
		if !m.dragging || !r.Focused() {
			return
		}
		off := r.OffsetAt(msg.X, msg.Y)
		r.SetSelection(region.Range{Anchor: m.dragAnchor, Focus: off})
		r.ScrollIntoView(off)

	case tea.MouseActionRelease:
		m.dragging = false
	}
}

func (m *Model) inBounds(x, y int) bool {
	if x < 0 || y < 0 || y >= m.region.Height() {
		return false
	}
	return m.region.Width() == 0 || x < m.region.Width()
}
