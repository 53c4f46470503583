package textbox

import (
	"log/slog"
	"sync/atomic"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/editable/region"
)

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

type overrideState struct {
	set   bool
	value string
}

// Model is a Bubble Tea text box bound to one editable region.
//
// The zero Model has no region; it ignores every message.
type Model struct {
	id   int
	cfg  Config
	keys KeyMap
	caps Capabilities
	log  *slog.Logger

	region *region.Region

	// content is the last accepted text. At rest it equals region.Text().
	content  string
	history  history
	override overrideState

	// dirty marks that the current event settled content and the region
	// height must be re-measured.
	dirty bool

	// Left-button drag state; offsets into the region.
	dragging   bool
	dragAnchor int

	viewport viewport.Model
}

func New(cfg Config) Model {
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = 1000
	}
	keys := cfg.KeyMap
	if keys.isZero() {
		keys = DefaultKeyMap()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	m := Model{
		id:       nextID(),
		cfg:      cfg,
		keys:     keys,
		caps:     allCapabilities &^ cfg.Disable,
		log:      log,
		region:   region.New(cfg.Text),
		content:  cfg.Text,
		history:  newHistory(cfg.Text, cfg.HistoryLimit),
		viewport: viewport.New(0, 0),
	}
	m.region.SetWidth(m.textWidth(cfg.Width))
	m.region.SetMaxHeight(cfg.MaxHeight)
	if cfg.AutoFocus {
		m.focus()
	}
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Value returns the accepted content.
func (m Model) Value() string { return m.content }

// Region exposes the live region for hosts that edit it directly; call Input
// afterwards so the text box reconciles.
func (m Model) Region() *region.Region { return m.region }

func (m Model) Focused() bool { return m.region != nil && m.region.Focused() }

func (m Model) Disabled() bool { return m.cfg.Disabled }

func (m Model) SetDisabled(disabled bool) Model {
	m.cfg.Disabled = disabled
	m.rebuildContent()
	return m
}

// MaxLength returns the enforced length cap, or 0 when unbounded.
func (m Model) MaxLength() int { return m.maxLength() }

func (m Model) CanUndo() bool { return m.caps.Has(CapUndoHistory) && m.history.canUndo() }

func (m Model) CanRedo() bool { return m.caps.Has(CapUndoHistory) && m.history.canRedo() }

// SetSize sets the outer width in cells and the maximum height in rows.
func (m Model) SetSize(width, maxHeight int) Model {
	if m.region == nil {
		return m
	}
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.cfg.MaxHeight = maxHeight
	m.region.SetWidth(m.textWidth(width))
	m.region.SetMaxHeight(maxHeight)
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if m.region == nil {
		return m
	}
	m.focus()
	m.rebuildContent()
	return m
}

func (m Model) Blur() Model {
	if m.region == nil {
		return m
	}
	if m.region.Blur() && m.cfg.OnBlur != nil {
		m.cfg.OnBlur(FocusEvent{Content: m.content})
	}
	m.rebuildContent()
	return m
}

func (m *Model) focus() {
	if m.region.Focus() && m.cfg.OnFocus != nil {
		m.cfg.OnFocus(FocusEvent{Content: m.content})
	}
}

// textWidth is the region width left after the length counter.
func (m *Model) textWidth(width int) int {
	if width <= 0 {
		return 0
	}
	width -= m.counterWidth()
	if width < 1 {
		width = 1
	}
	return width
}

func (m *Model) maxLength() int {
	if !m.caps.Has(CapLengthLimit) || m.cfg.MaxLength <= 0 {
		return 0
	}
	return m.cfg.MaxLength
}

func (m *Model) withinLimit(s string) bool {
	max := m.maxLength()
	return max == 0 || utf8.RuneCountInString(s) <= max
}

// settle finishes one handled event.
func (m *Model) settle() {
	if m.region == nil {
		return
	}
	if m.dirty {
		m.region.ResetHeight()
		m.dirty = false
	}
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	if m.region == nil {
		return
	}
	m.viewport.Width = m.region.Width()
	m.viewport.Height = m.region.Height()
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(m.region.ScrollTop())
}
