package grapheme

import (
	"fmt"
	"testing"
)

func TestClusters_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	got := Clusters(text)
	if len(got) != 4 {
		t.Fatalf("clusters len=%d, want %d", len(got), 4)
	}
	if got[1].Text != "e\u0301" || got[1].Runes != 2 {
		t.Fatalf("clusters[1]=%+v, want e+acute with 2 runes", got[1])
	}
	if got[2].Runes != 5 {
		t.Fatalf("clusters[2].Runes=%d, want %d", got[2].Runes, 5)
	}
}

func TestBoundaries(t *testing.T) {
	cases := []struct {
		text string
		want []int
	}{
		{text: "", want: []int{0}},
		{text: "ab", want: []int{0, 1, 2}},
		{text: "e\u0301x", want: []int{0, 2, 3}},
		{text: "a\nb", want: []int{0, 1, 2, 3}},
	}
	for _, tc := range cases {
		got := Boundaries(tc.text)
		if fmt.Sprint(got) != fmt.Sprint(tc.want) {
			t.Fatalf("Boundaries(%q): got %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestWidth(t *testing.T) {
	if got := Width("a", 0); got != 1 {
		t.Fatalf("width of a: got %d, want %d", got, 1)
	}
	if got := Width("世", 0); got != 2 {
		t.Fatalf("width of CJK: got %d, want %d", got, 2)
	}
	if got := Width("\t", 1); got != 3 {
		t.Fatalf("tab width at col 1: got %d, want %d", got, 3)
	}
}
