package region

import (
	"fmt"
	"testing"
)

func TestRows_HardAndSoftBreaks(t *testing.T) {
	r := New("abcdef\ngh")
	r.SetWidth(4)

	got := r.Rows()
	want := []Row{{0, 4}, {4, 6}, {7, 9}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("rows: got %v, want %v", got, want)
	}
}

func TestRows_EmptyHasOneRow(t *testing.T) {
	r := New("")
	if got := r.RowCount(); got != 1 {
		t.Fatalf("row count: got %d, want %d", got, 1)
	}
}

func TestRows_TrailingNewlineOpensRow(t *testing.T) {
	r := New("ab\n")
	got := r.Rows()
	want := []Row{{0, 2}, {3, 3}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("rows: got %v, want %v", got, want)
	}
}

func TestRows_WideGraphemesWrapWhole(t *testing.T) {
	r := New("a世界")
	r.SetWidth(4)
	got := r.Rows()
	want := []Row{{0, 2}, {2, 3}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("rows: got %v, want %v", got, want)
	}
}

func TestRowOf(t *testing.T) {
	r := New("abcdef\ngh")
	r.SetWidth(4)

	cases := []struct {
		off  int
		want int
	}{
		{off: 0, want: 0},
		{off: 4, want: 0}, // end of a full row stays on it
		{off: 5, want: 1},
		{off: 6, want: 1},
		{off: 7, want: 2},
		{off: 9, want: 2},
	}
	for _, tc := range cases {
		if got := r.RowOf(tc.off); got != tc.want {
			t.Fatalf("RowOf(%d): got %d, want %d", tc.off, got, tc.want)
		}
	}
}

func TestSetWidth_InvalidatesLayout(t *testing.T) {
	r := New("abcdef")
	if got := r.RowCount(); got != 1 {
		t.Fatalf("unwrapped rows: got %d, want %d", got, 1)
	}
	r.SetWidth(2)
	if got := r.RowCount(); got != 3 {
		t.Fatalf("wrapped rows: got %d, want %d", got, 3)
	}
}

func TestOffsetAt(t *testing.T) {
	r := New("abcdef\nxy")
	r.SetWidth(4) // rows: "abcd", "ef", "xy"

	cases := []struct {
		x, y int
		want int
	}{
		{x: 0, y: 0, want: 0},
		{x: 2, y: 0, want: 2},
		{x: 9, y: 1, want: 6},
		{x: 1, y: 2, want: 8},
		{x: -3, y: -1, want: 0},
		{x: 5, y: 7, want: 9},
	}
	for _, tc := range cases {
		if got := r.OffsetAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("OffsetAt(%d, %d): got %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}

	r.SetMaxHeight(1)
	r.ResetHeight()
	r.SetScrollTop(2)
	if got := r.OffsetAt(1, 0); got != 8 {
		t.Fatalf("scrolled OffsetAt: got %d, want %d", got, 8)
	}
}
