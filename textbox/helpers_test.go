package textbox

import (
	tea "github.com/charmbracelet/bubbletea"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }

type recorder struct {
	changes  []string
	edits    []ChangeEvent
	external []string
	focus    int
	blur     int
	keyUps   int
}

func (r *recorder) config(cfg Config) Config {
	cfg.OnChange = func(s string) { r.changes = append(r.changes, s) }
	cfg.OnEdit = func(ev ChangeEvent) { r.edits = append(r.edits, ev) }
	cfg.OnContentExternalUpdate = func(s string) { r.external = append(r.external, s) }
	cfg.OnFocus = func(FocusEvent) { r.focus++ }
	cfg.OnBlur = func(FocusEvent) { r.blur++ }
	cfg.OnKeyUp = func(*KeyEvent) { r.keyUps++ }
	return cfg
}

func (r *recorder) last() string {
	if len(r.changes) == 0 {
		return "<none>"
	}
	return r.changes[len(r.changes)-1]
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, k tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: k})
	return m
}

func bracketedPaste(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true})
	return m
}
