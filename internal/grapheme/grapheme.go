package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabWidth is the tab stop distance in cells.
const TabWidth = 4

// Cluster is one user-perceived character of a text.
type Cluster struct {
	Text  string
	Runes int // length in runes
}

// Clusters returns the grapheme clusters of text in order.
func Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	for g.Next() {
		out = append(out, Cluster{Text: g.Str(), Runes: len(g.Runes())})
	}
	return out
}

// Boundaries returns the rune offsets at which grapheme clusters start, plus
// the total rune length as the final entry. Empty text yields [0].
func Boundaries(text string) []int {
	out := []int{0}
	off := 0
	for _, c := range Clusters(text) {
		off += c.Runes
		out = append(out, off)
	}
	return out
}

// Width returns the terminal cell width of cluster placed at column col.
func Width(cluster string, col int) int {
	if cluster == "\t" {
		if col < 0 {
			col = 0
		}
		return TabWidth - col%TabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}
