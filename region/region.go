package region

import (
	"sort"

	"github.com/iw2rmb/editable/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor int
	focus  int
}

// Region is a live editable surface: text, the platform selection inside it,
// focus, soft-wrap layout, and scroll/height state.
type Region struct {
	text    []rune
	bounds  []int // grapheme start offsets plus len(text)
	version uint64

	sel     selectionState
	focused bool

	width     int
	rows      []Row
	rowsValid bool

	maxHeight    int
	height       int
	heightResets int
	scrollTop    int
}

func New(text string) *Region {
	r := &Region{}
	r.setText(text)
	r.height = r.measureHeight()
	return r
}

// Text returns the rendered plain-text content.
func (r *Region) Text() string { return string(r.text) }

// Len returns the content length in runes.
func (r *Region) Len() int { return len(r.text) }

func (r *Region) Empty() bool { return len(r.text) == 0 }

// Version increases on every content mutation.
func (r *Region) Version() uint64 { return r.version }

// SetText replaces the whole content. A focused region keeps a caret at the
// start; an unfocused one loses all selection ranges.
func (r *Region) SetText(s string) {
	r.sel = selectionState{}
	if r.focused {
		r.sel = selectionState{active: true}
	}
	if s == string(r.text) {
		return
	}
	r.setText(s)
	r.version++
	r.clampScroll()
}

func (r *Region) setText(s string) {
	r.text = []rune(s)
	r.bounds = grapheme.Boundaries(s)
	r.rowsValid = false
}

// Selection returns the current range. ok is false when the region holds no
// range at all (for example before it was ever focused).
func (r *Region) Selection() (rng Range, ok bool) {
	if !r.sel.active {
		return Range{}, false
	}
	return Range{Anchor: r.sel.anchor, Focus: r.sel.focus}, true
}

// SelectedText returns the text covered by the current range.
func (r *Region) SelectedText() string {
	rng, ok := r.Selection()
	if !ok || rng.Collapsed() {
		return ""
	}
	return string(r.text[rng.Start():rng.End()])
}

// SetSelection places a range, clamping both ends into the content and
// snapping them to grapheme boundaries.
func (r *Region) SetSelection(rng Range) {
	r.sel = selectionState{
		active: true,
		anchor: r.snap(rng.Anchor),
		focus:  r.snap(rng.Focus),
	}
}

// Collapse replaces the selection with a caret at off.
func (r *Region) Collapse(off int) { r.SetSelection(Caret(off)) }

func (r *Region) SelectAll() { r.SetSelection(Range{Anchor: 0, Focus: len(r.text)}) }

func (r *Region) RemoveAllRanges() { r.sel = selectionState{} }

// Focus gives the region input focus. A region without a range gets a caret
// at the start. It reports whether focus changed.
func (r *Region) Focus() bool {
	if !r.sel.active {
		r.Collapse(0)
	}
	if r.focused {
		return false
	}
	r.focused = true
	return true
}

// Blur drops input focus; the selection is kept.
func (r *Region) Blur() bool {
	if !r.focused {
		return false
	}
	r.focused = false
	return true
}

func (r *Region) Focused() bool { return r.focused }

// ReplaceSelection deletes the selected range, inserts text in its place and
// collapses the caret right after the inserted text. Without a range it does
// nothing and reports false.
func (r *Region) ReplaceSelection(text string) bool {
	rng, ok := r.Selection()
	if !ok {
		return false
	}
	if text == "" && rng.Collapsed() {
		return false
	}
	next := r.replace(rng.Start(), rng.End(), text)
	r.Collapse(next)
	return true
}

// replace swaps [start, end) for text and returns the offset after text.
func (r *Region) replace(start, end int, text string) int {
	ins := []rune(text)
	out := make([]rune, 0, len(r.text)-(end-start)+len(ins))
	out = append(out, r.text[:start]...)
	out = append(out, ins...)
	out = append(out, r.text[end:]...)

	r.setText(string(out))
	r.version++
	r.clampScroll()
	return start + len(ins)
}

// snap clamps off into the content and moves it back to the grapheme
// boundary at or before it.
func (r *Region) snap(off int) int {
	off = clampInt(off, 0, len(r.text))
	i := sort.SearchInts(r.bounds, off)
	if i < len(r.bounds) && r.bounds[i] == off {
		return off
	}
	if i == 0 {
		return 0
	}
	return r.bounds[i-1]
}

func (r *Region) prevBoundary(off int) int {
	i := sort.SearchInts(r.bounds, off)
	if i == 0 {
		return 0
	}
	return r.bounds[i-1]
}

func (r *Region) nextBoundary(off int) int {
	i := sort.SearchInts(r.bounds, off+1)
	if i >= len(r.bounds) {
		return len(r.text)
	}
	return r.bounds[i]
}
