package region

// Range is the platform selection inside a region.
//
// Anchor is where the selection started and Focus is where it currently ends;
// Focus may precede Anchor. A collapsed Range is a plain caret.
type Range struct {
	Anchor int
	Focus  int
}

// Start returns the earlier boundary in document order.
func (r Range) Start() int {
	if r.Anchor < r.Focus {
		return r.Anchor
	}
	return r.Focus
}

// End returns the later boundary in document order.
func (r Range) End() int {
	if r.Anchor > r.Focus {
		return r.Anchor
	}
	return r.Focus
}

func (r Range) Len() int { return r.End() - r.Start() }

func (r Range) Collapsed() bool { return r.Anchor == r.Focus }

// Caret returns a collapsed Range at off.
func Caret(off int) Range { return Range{Anchor: off, Focus: off} }

// Row is one visual row of the soft-wrapped layout, as the rune span
// [Start, End). A hard line break is not part of either adjacent row.
type Row struct {
	Start int
	End   int
}

func (r Row) Len() int { return r.End - r.Start }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
