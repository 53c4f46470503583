package region

import "testing"

func TestRegion_TypingAndDeletion(t *testing.T) {
	r := New("")
	r.Focus()
	r.InsertText("a")
	r.InsertText("b")
	r.InsertNewline()
	r.InsertText("c")
	if got := r.Text(); got != "ab\nc" {
		t.Fatalf("text after typing: got %q, want %q", got, "ab\nc")
	}

	r.DeleteBackward()
	r.DeleteBackward()
	if got := r.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}

	r.Collapse(0)
	r.DeleteForward()
	if got := r.Text(); got != "b" {
		t.Fatalf("text after delete: got %q, want %q", got, "b")
	}
	rng, _ := r.Selection()
	if rng != Caret(0) {
		t.Fatalf("caret after delete: got %v, want %v", rng, Caret(0))
	}
}

func TestRegion_DeleteAtEdgesIsNoop(t *testing.T) {
	r := New("ab")
	r.Focus()
	if r.DeleteBackward() {
		t.Fatalf("backspace at start should be a no-op")
	}
	r.Collapse(2)
	if r.DeleteForward() {
		t.Fatalf("delete at end should be a no-op")
	}
}

func TestRegion_DeleteRemovesWholeGrapheme(t *testing.T) {
	r := New("ae\u0301")
	r.Focus()
	r.Collapse(3)
	r.DeleteBackward()
	if got := r.Text(); got != "a" {
		t.Fatalf("text: got %q, want %q", got, "a")
	}
}

func TestRegion_DeleteSelection(t *testing.T) {
	r := New("hello")
	r.SetSelection(Range{Anchor: 1, Focus: 4})
	r.DeleteForward()
	if got := r.Text(); got != "ho" {
		t.Fatalf("text: got %q, want %q", got, "ho")
	}
}

func TestRegion_MoveGraphemeAndExtend(t *testing.T) {
	r := New("abc")
	r.Focus()
	r.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	r.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	rng, _ := r.Selection()
	if rng != (Range{Anchor: 1, Focus: 2}) {
		t.Fatalf("extended selection: got %v, want %v", rng, Range{Anchor: 1, Focus: 2})
	}

	r.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	rng, _ = r.Selection()
	if rng != Caret(1) {
		t.Fatalf("collapse left: got %v, want %v", rng, Caret(1))
	}
}

func TestRegion_MoveRowsKeepsColumn(t *testing.T) {
	r := New("abcd\nxy\nlmnop")
	r.Focus()
	r.Collapse(3) // abc|d

	r.Move(Move{Unit: MoveRow, Dir: DirDown})
	rng, _ := r.Selection()
	if rng != Caret(7) { // xy|
		t.Fatalf("down: got %v, want %v", rng, Caret(7))
	}

	r.Move(Move{Unit: MoveRow, Dir: DirDown})
	rng, _ = r.Selection()
	if rng != Caret(10) { // lm|nop
		t.Fatalf("down again: got %v, want %v", rng, Caret(10))
	}

	r.Move(Move{Unit: MoveRow, Dir: DirDown})
	rng, _ = r.Selection()
	if rng != Caret(13) {
		t.Fatalf("down on last row: got %v, want %v", rng, Caret(13))
	}

	r.Move(Move{Unit: MoveRow, Dir: DirHome})
	rng, _ = r.Selection()
	if rng != Caret(8) {
		t.Fatalf("home: got %v, want %v", rng, Caret(8))
	}
}

func TestRegion_MoveUnfocusedWithoutRangeIsNoop(t *testing.T) {
	r := New("abc")
	if r.Move(Move{Unit: MoveGrapheme, Dir: DirRight}) {
		t.Fatalf("expected no-op")
	}
}
