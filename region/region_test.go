package region

import "testing"

func TestRegion_NewHasNoRange(t *testing.T) {
	r := New("abc")
	if _, ok := r.Selection(); ok {
		t.Fatalf("expected no range before focus")
	}
	if r.Focused() {
		t.Fatalf("expected unfocused region")
	}
	if got := r.Len(); got != 3 {
		t.Fatalf("len: got %d, want %d", got, 3)
	}
}

func TestRegion_FocusPlacesCaretAtStart(t *testing.T) {
	r := New("abc")
	if !r.Focus() {
		t.Fatalf("expected focus change")
	}
	if r.Focus() {
		t.Fatalf("expected second focus to be a no-op")
	}
	rng, ok := r.Selection()
	if !ok || rng != Caret(0) {
		t.Fatalf("selection after focus: got %v (ok=%v), want %v", rng, ok, Caret(0))
	}
}

func TestRegion_SetTextRemovesRangesAndVersions(t *testing.T) {
	r := New("abc")
	r.SelectAll()
	v := r.Version()

	r.SetText("xyz")
	if got := r.Text(); got != "xyz" {
		t.Fatalf("text: got %q, want %q", got, "xyz")
	}
	if _, ok := r.Selection(); ok {
		t.Fatalf("expected ranges removed")
	}
	if got := r.Version(); got != v+1 {
		t.Fatalf("version: got %d, want %d", got, v+1)
	}

	r.SetText("xyz")
	if got := r.Version(); got != v+1 {
		t.Fatalf("version after same text: got %d, want %d", got, v+1)
	}
}

func TestRegion_SetSelectionClampsAndSnaps(t *testing.T) {
	r := New("ae\u0301b") // a, e+acute, b
	r.SetSelection(Range{Anchor: -5, Focus: 99})
	rng, _ := r.Selection()
	if rng != (Range{Anchor: 0, Focus: 4}) {
		t.Fatalf("clamped: got %v, want %v", rng, Range{Anchor: 0, Focus: 4})
	}

	r.Collapse(2) // inside the combining cluster
	rng, _ = r.Selection()
	if rng != Caret(1) {
		t.Fatalf("snapped: got %v, want %v", rng, Caret(1))
	}
}

func TestRegion_SelectedTextAndRangeOrder(t *testing.T) {
	r := New("hello")
	r.SetSelection(Range{Anchor: 4, Focus: 1})
	if got := r.SelectedText(); got != "ell" {
		t.Fatalf("selected text: got %q, want %q", got, "ell")
	}
	rng, _ := r.Selection()
	if rng.Start() != 1 || rng.End() != 4 || rng.Len() != 3 {
		t.Fatalf("range bounds: got start=%d end=%d len=%d", rng.Start(), rng.End(), rng.Len())
	}
}

func TestRegion_ReplaceSelection(t *testing.T) {
	r := New("hello world")
	r.SetSelection(Range{Anchor: 6, Focus: 11})
	if !r.ReplaceSelection("there") {
		t.Fatalf("expected replace")
	}
	if got := r.Text(); got != "hello there" {
		t.Fatalf("text: got %q, want %q", got, "hello there")
	}
	rng, _ := r.Selection()
	if rng != Caret(11) {
		t.Fatalf("caret: got %v, want %v", rng, Caret(11))
	}
}

func TestRegion_ReplaceSelection_NoRangeIsNoop(t *testing.T) {
	r := New("abc")
	if r.ReplaceSelection("x") {
		t.Fatalf("expected no-op without a range")
	}
	if got := r.Text(); got != "abc" {
		t.Fatalf("text: got %q, want %q", got, "abc")
	}
}

func TestRegion_SetTextWhileFocusedKeepsCaretAtStart(t *testing.T) {
	r := New("abc")
	r.Focus()
	r.Collapse(3)

	r.SetText("hello")
	rng, ok := r.Selection()
	if !ok || rng != Caret(0) {
		t.Fatalf("selection: got %v (ok=%v), want %v", rng, ok, Caret(0))
	}
}
