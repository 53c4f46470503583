package region

// SetMaxHeight bounds the auto height in rows. Zero means unbounded.
func (r *Region) SetMaxHeight(rows int) {
	if rows < 0 {
		rows = 0
	}
	r.maxHeight = rows
	r.height = r.measureHeight()
	r.clampScroll()
}

// Height returns the number of visible rows as of the last ResetHeight.
func (r *Region) Height() int { return r.height }

// ResetHeight re-measures the auto height from the current layout.
func (r *Region) ResetHeight() {
	r.height = r.measureHeight()
	r.heightResets++
	r.clampScroll()
}

// HeightResets counts ResetHeight calls.
func (r *Region) HeightResets() int { return r.heightResets }

func (r *Region) measureHeight() int {
	h := r.RowCount()
	if r.maxHeight > 0 && h > r.maxHeight {
		h = r.maxHeight
	}
	return h
}

// ScrollHeight returns the full content height in rows.
func (r *Region) ScrollHeight() int { return r.RowCount() }

// ScrollTop returns the first visible row.
func (r *Region) ScrollTop() int { return r.scrollTop }

// SetScrollTop scrolls to row, clamped so the last page stays full.
func (r *Region) SetScrollTop(row int) {
	r.scrollTop = row
	r.clampScroll()
}

func (r *Region) ScrollToTop() { r.SetScrollTop(0) }

func (r *Region) ScrollToBottom() { r.SetScrollTop(r.ScrollHeight()) }

// ScrollIntoView scrolls the minimum amount that makes the row of off
// visible.
func (r *Region) ScrollIntoView(off int) {
	if r.height <= 0 {
		return
	}
	row := r.RowOf(off)
	if row < r.scrollTop {
		r.SetScrollTop(row)
		return
	}
	if row >= r.scrollTop+r.height {
		r.SetScrollTop(row - r.height + 1)
	}
}

func (r *Region) clampScroll() {
	max := r.ScrollHeight() - r.height
	r.scrollTop = clampInt(r.scrollTop, 0, max)
}
