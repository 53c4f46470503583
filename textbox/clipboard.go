package textbox

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Clipboard provides the text box with clipboard contents.
//
// Errors must not crash the UI; failures are logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
}

type systemClipboard struct{}

// SystemClipboard returns the operating system clipboard.
func SystemClipboard() Clipboard { return systemClipboard{} }

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

// readClipboard reads the clipboard off the update loop and delivers the
// result to this instance only.
func (m *Model) readClipboard() tea.Cmd {
	cb := m.cfg.Clipboard
	if cb == nil {
		return nil
	}
	id := m.id
	return func() tea.Msg {
		s, err := cb.ReadText()
		if err != nil {
			return clipboardErrMsg{id: id, err: err}
		}
		return pasteMsg{id: id, text: s}
	}
}
