package region

import "github.com/iw2rmb/editable/internal/grapheme"

// SetWidth sets the layout width in terminal cells. Zero disables soft wrap.
func (r *Region) SetWidth(cells int) {
	if cells < 0 {
		cells = 0
	}
	if cells == r.width {
		return
	}
	r.width = cells
	r.rowsValid = false
	r.clampScroll()
}

func (r *Region) Width() int { return r.width }

// Rows returns the visual rows of the content. There is always at least one.
//
// A row breaks at every line break, and before a grapheme that would not fit
// into the remaining width. A caret right after the last grapheme of a full
// row therefore stays on that row.
func (r *Region) Rows() []Row {
	if r.rowsValid {
		return r.rows
	}

	rows := make([]Row, 0, 1)
	start, off, col := 0, 0, 0
	for _, c := range grapheme.Clusters(string(r.text)) {
		if c.Text == "\n" || c.Text == "\r\n" {
			rows = append(rows, Row{Start: start, End: off})
			off += c.Runes
			start, col = off, 0
			continue
		}
		w := grapheme.Width(c.Text, col)
		if r.width > 0 && col > 0 && col+w > r.width {
			rows = append(rows, Row{Start: start, End: off})
			start, col = off, 0
			w = grapheme.Width(c.Text, col)
		}
		off += c.Runes
		col += w
	}
	rows = append(rows, Row{Start: start, End: off})

	r.rows = rows
	r.rowsValid = true
	return rows
}

func (r *Region) RowCount() int { return len(r.Rows()) }

// RowOf returns the visual row the caret at off is drawn on.
func (r *Region) RowOf(off int) int {
	off = r.snap(off)
	rows := r.Rows()
	for i, row := range rows {
		if off >= row.Start && off <= row.End {
			return i
		}
	}
	return len(rows) - 1
}

// colOf returns the cell column of off within its row.
func (r *Region) colOf(off int) int {
	off = r.snap(off)
	row := r.Rows()[r.RowOf(off)]
	col := 0
	for _, c := range grapheme.Clusters(string(r.text[row.Start:off])) {
		col += grapheme.Width(c.Text, col)
	}
	return col
}

// offsetAtCol returns the offset in row whose column is closest to col
// without passing it.
func (r *Region) offsetAtCol(row, col int) int {
	span := r.Rows()[row]
	off, cur := span.Start, 0
	for _, c := range grapheme.Clusters(string(r.text[span.Start:span.End])) {
		w := grapheme.Width(c.Text, cur)
		if cur+w > col {
			break
		}
		cur += w
		off += c.Runes
	}
	return off
}

// OffsetAt maps a cell inside the visible area, with (0,0) at its top-left,
// to a content offset. Points outside the content clamp to the nearest row
// and column.
func (r *Region) OffsetAt(x, y int) int {
	row := clampInt(r.scrollTop+y, 0, r.RowCount()-1)
	if x < 0 {
		x = 0
	}
	return r.offsetAtCol(row, x)
}
