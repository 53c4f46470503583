package region

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveRow               // visual row: up/down, home/end
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // row start (or doc start for MoveDoc)
	DirEnd  // row end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the focus
}

// Move moves the caret. Without Extend a non-empty selection collapses to
// the side the move points at. It reports whether the selection changed.
func (r *Region) Move(m Move) bool {
	prev, ok := r.Selection()
	if !ok {
		if !r.focused {
			return false
		}
		prev = Caret(0)
	}

	var next Range
	switch {
	case m.Extend:
		next = Range{Anchor: prev.Anchor, Focus: r.moveOffset(prev.Focus, m)}
	case !prev.Collapsed() && m.Unit == MoveGrapheme && m.Dir == DirLeft:
		next = Caret(prev.Start())
	case !prev.Collapsed() && m.Unit == MoveGrapheme && m.Dir == DirRight:
		next = Caret(prev.End())
	default:
		next = Caret(r.moveOffset(prev.Focus, m))
	}

	r.SetSelection(next)
	cur, _ := r.Selection()
	if cur == prev && ok {
		return false
	}
	r.ScrollIntoView(cur.Focus)
	return true
}

func (r *Region) moveOffset(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			return r.prevBoundary(off)
		case DirRight:
			return r.nextBoundary(off)
		}
	case MoveRow:
		return r.moveRow(off, m.Dir)
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			return 0
		default:
			return len(r.text)
		}
	}
	return off
}

func (r *Region) moveRow(off int, dir MoveDir) int {
	rows := r.Rows()
	row := r.RowOf(off)
	switch dir {
	case DirHome:
		return rows[row].Start
	case DirEnd:
		return rows[row].End
	case DirUp:
		if row == 0 {
			return 0
		}
		return r.offsetAtCol(row-1, r.colOf(off))
	case DirDown:
		if row == len(rows)-1 {
			return len(r.text)
		}
		return r.offsetAtCol(row+1, r.colOf(off))
	}
	return off
}
