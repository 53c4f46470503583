package textbox

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/runeutil"
	"github.com/charmbracelet/x/ansi"
)

var pasteSanitizer = runeutil.NewSanitizer()

// plainText reduces clipboard data to plain text: terminal styling is
// stripped, line endings become "\n", tabs become spaces and other control
// runes are dropped.
func plainText(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return string(pasteSanitizer.Sanitize([]rune(s)))
}

// pasteBudget returns how many runes may be inserted when selLen of curLen
// runes get replaced.
func (m *Model) pasteBudget(textLen, curLen, selLen int) int {
	max := m.maxLength()
	if max == 0 {
		return textLen
	}
	return max - (curLen - selLen)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func (m *Model) handlePaste(raw string) {
	if m.cfg.Disabled {
		return
	}

	text := plainText(raw)
	textLen := utf8.RuneCountInString(text)
	cur := m.region.Len()

	if rng, ok := m.region.Selection(); ok && !rng.Collapsed() {
		ins := truncateRunes(text, m.pasteBudget(textLen, cur, rng.Len()))
		m.logTruncation(textLen, ins)
		if ins == "" {
			return
		}
		m.region.ReplaceSelection(ins)
		m.commit(m.region.Text(), CausePaste)
		return
	}

	ins := truncateRunes(text, m.pasteBudget(textLen, cur, 0))
	m.logTruncation(textLen, ins)
	if ins == "" {
		return
	}
	m.insertAtCaret(ins)
}

// insertAtCaret rebuilds the content around the caret offset.
func (m *Model) insertAtCaret(text string) {
	off := m.caretOffset()
	cur := []rune(m.region.Text())
	if off > len(cur) {
		off = len(cur)
	}

	m.region.SetText(string(cur[:off]) + text + string(cur[off:]))
	m.commit(m.region.Text(), CausePaste)
	m.region.ScrollToBottom()
	m.setCaret(off + utf8.RuneCountInString(text))
}

func (m *Model) logTruncation(textLen int, ins string) {
	if n := utf8.RuneCountInString(ins); n < textLen {
		m.log.Debug("paste truncated", "pasted", textLen, "inserted", n, "max", m.maxLength())
	}
}
