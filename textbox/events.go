package textbox

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent is a key press as seen by OnKeyDown and OnKeyUp.
//
// Calling PreventDefault from OnKeyDown stops the region from applying the
// key natively.
type KeyEvent struct {
	Key tea.KeyMsg

	prevented bool
}

func (e *KeyEvent) PreventDefault() { e.prevented = true }

func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// FocusEvent is passed to OnFocus and OnBlur.
type FocusEvent struct {
	Content string
}

// Cause says what produced a content change.
type Cause uint8

const (
	CauseInput Cause = iota
	CausePaste
	CauseClear
	CauseUndo
	CauseRedo
	CauseExternal
)

var causeNames = [...]string{
	CauseInput:    "input",
	CausePaste:    "paste",
	CauseClear:    "clear",
	CauseUndo:     "undo",
	CauseRedo:     "redo",
	CauseExternal: "external",
}

func (c Cause) String() string {
	if int(c) < len(causeNames) {
		return causeNames[c]
	}
	return "unknown"
}

// recorded reports whether changes of this cause enter the undo history.
func (c Cause) recorded() bool {
	return c == CauseInput || c == CausePaste || c == CauseClear
}

// ChangeEvent describes an accepted content change.
type ChangeEvent struct {
	Text     string
	Previous string
	Cause    Cause

	// Edits turn Previous into Text. Offsets are rune offsets into Previous,
	// in ascending order.
	Edits []Edit
}

// Edit replaces Deleted at Offset with Inserted.
type Edit struct {
	Offset   int
	Deleted  string
	Inserted string
}

type pasteMsg struct {
	id   int
	text string
}

type clipboardErrMsg struct {
	id  int
	err error
}
