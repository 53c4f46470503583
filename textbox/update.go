package textbox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/editable/region"
)

// Update handles key presses, bracketed and clipboard pastes, mouse clicks,
// wheel scrolling and window resizes.
//
// Hosts may deliver every message to every instance: key handling only acts
// on the focused region, and clipboard results only reach the instance that
// asked for them.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.region == nil {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case pasteMsg:
		if msg.id == m.id {
			m.handlePaste(msg.text)
		}
	case clipboardErrMsg:
		if msg.id == m.id {
			m.log.Debug("clipboard read failed", "err", msg.err)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.settle()
	return m, cmd
}

// Input reconciles the text box after the host edited Region directly.
func (m Model) Input() Model {
	if m.region == nil {
		return m
	}
	m.handleInput()
	m.settle()
	return m
}

// Paste inserts clipboard text as if the user pasted it.
func (m Model) Paste(text string) Model {
	if m.region == nil {
		return m
	}
	m.handlePaste(text)
	m.settle()
	return m
}

// Undo restores the previous accepted state, if any.
func (m Model) Undo() Model {
	if m.region == nil || m.cfg.Disabled || !m.caps.Has(CapUndoHistory) {
		return m
	}
	m.undo()
	m.settle()
	return m
}

// Redo re-applies the most recently undone state, if any.
func (m Model) Redo() Model {
	if m.region == nil || m.cfg.Disabled || !m.caps.Has(CapUndoHistory) {
		return m
	}
	m.redo()
	m.settle()
	return m
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.cfg.Disabled || !m.region.Focused() {
		return nil
	}

	// Bracketed paste carries the clipboard payload; it is never a shortcut.
	if msg.Paste {
		m.handlePaste(string(msg.Runes))
		return nil
	}

	ev := &KeyEvent{Key: msg}
	cmd := m.keyDown(ev)
	if !ev.prevented {
		m.applyNative(msg)
	}
	m.keyUp(ev)
	return cmd
}

func (m *Model) keyDown(ev *KeyEvent) tea.Cmd {
	if m.cfg.OnKeyDown != nil {
		m.cfg.OnKeyDown(ev)
	}

	km := m.keys
	msg := ev.Key
	switch {
	case m.clearsAll(msg):
		ev.PreventDefault()
		m.region.SetText("")
		m.commit("", CauseClear)
	case m.caps.Has(CapUndoHistory) && key.Matches(msg, km.Undo):
		ev.PreventDefault()
		m.undo()
	case m.caps.Has(CapUndoHistory) && key.Matches(msg, km.Redo):
		ev.PreventDefault()
		m.redo()
	case key.Matches(msg, km.Paste):
		ev.PreventDefault()
		return m.readClipboard()
	}
	return nil
}

// clearsAll reports whether a delete key empties the whole content: with
// everything selected, Backspace on a single rune, or Delete on a single
// rune with the caret before it.
func (m *Model) clearsAll(msg tea.KeyMsg) bool {
	back := key.Matches(msg, m.keys.Backspace)
	del := key.Matches(msg, m.keys.Delete)
	if !back && !del {
		return false
	}
	if m.allSelected() {
		return true
	}
	single := len([]rune(m.content)) == 1
	return single && (back || m.caretOffset() == 0)
}

func (m *Model) keyUp(ev *KeyEvent) {
	if m.cfg.OnKeyUp != nil {
		m.cfg.OnKeyUp(ev)
	}
	m.scrollFollow(ev.Key)
}

// applyNative is the region's own handling of a key: caret movement and
// editing applied straight to the surface. A content change is then
// reconciled as an input event.
func (m *Model) applyNative(msg tea.KeyMsg) {
	r := m.region
	km := m.keys
	before := r.Version()

	switch {
	case key.Matches(msg, km.Left):
		r.Move(region.Move{Unit: region.MoveGrapheme, Dir: region.DirLeft})
	case key.Matches(msg, km.Right):
		r.Move(region.Move{Unit: region.MoveGrapheme, Dir: region.DirRight})
	case key.Matches(msg, km.Up):
		r.Move(region.Move{Unit: region.MoveRow, Dir: region.DirUp})
	case key.Matches(msg, km.Down):
		r.Move(region.Move{Unit: region.MoveRow, Dir: region.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		r.Move(region.Move{Unit: region.MoveGrapheme, Dir: region.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		r.Move(region.Move{Unit: region.MoveGrapheme, Dir: region.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		r.Move(region.Move{Unit: region.MoveRow, Dir: region.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		r.Move(region.Move{Unit: region.MoveRow, Dir: region.DirDown, Extend: true})

	case key.Matches(msg, km.Home):
		r.Move(region.Move{Unit: region.MoveRow, Dir: region.DirHome})
	case key.Matches(msg, km.End):
		r.Move(region.Move{Unit: region.MoveRow, Dir: region.DirEnd})
	case key.Matches(msg, km.DocStart):
		r.Move(region.Move{Unit: region.MoveDoc, Dir: region.DirHome})
	case key.Matches(msg, km.DocEnd):
		r.Move(region.Move{Unit: region.MoveDoc, Dir: region.DirEnd})
	case key.Matches(msg, km.SelectAll):
		r.SelectAll()

	case key.Matches(msg, km.Backspace):
		r.DeleteBackward()
	case key.Matches(msg, km.Delete):
		r.DeleteForward()
	case key.Matches(msg, km.Enter):
		r.InsertNewline()

	default:
		switch {
		case msg.Type == tea.KeySpace:
			r.InsertText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			r.InsertText(string(msg.Runes))
		}
	}

	if r.Version() == before {
		return
	}
	if rng, ok := r.Selection(); ok {
		r.ScrollIntoView(rng.Focus)
	}
	m.handleInput()
}
