package textbox

import "log/slog"

// Capabilities is a set of independently switchable text box features.
type Capabilities uint8

const (
	// CapLengthLimit enforces Config.MaxLength and shows the counter.
	CapLengthLimit Capabilities = 1 << iota
	// CapUndoHistory records accepted states and handles undo/redo keys.
	CapUndoHistory
	// CapExternalOverride honors SetUpdatedContent.
	CapExternalOverride

	allCapabilities = CapLengthLimit | CapUndoHistory | CapExternalOverride
)

func (c Capabilities) Has(f Capabilities) bool { return c&f == f }

// Config configures the text box Model.
type Config struct {
	// Initial content. It seeds the undo history.
	Text string

	// Placeholder is shown while the content is empty.
	Placeholder string

	// Disabled turns input, paste and key handling into no-ops. Focus and
	// blur notifications still pass through.
	Disabled bool

	// MaxLength caps the content length in runes. Zero or less is unbounded.
	MaxLength int

	// AutoFocus focuses the region once, in New.
	AutoFocus bool

	// Disable switches capabilities off; the zero value enables all of them.
	Disable Capabilities

	// HistoryLimit caps the undo stack. Default: 1000.
	HistoryLimit int

	// Width of the text area in cells (0 disables soft wrap) and the maximum
	// auto height in rows (0 is unbounded).
	Width     int
	MaxHeight int

	KeyMap KeyMap // zero value uses DefaultKeyMap
	Style  Style

	// Clipboard backs the Paste key binding. Nil disables it; bracketed
	// paste from the terminal works either way.
	Clipboard Clipboard

	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger

	OnChange                func(content string)
	OnEdit                  func(ChangeEvent)
	OnFocus                 func(FocusEvent)
	OnBlur                  func(FocusEvent)
	OnKeyDown               func(*KeyEvent)
	OnKeyUp                 func(*KeyEvent)
	OnContentExternalUpdate func(content string)
}
