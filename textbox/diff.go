package textbox

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffEdits computes the replacements that turn prev into next.
func diffEdits(prev, next string) []Edit {
	if prev == next {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(prev, next, false))

	var (
		out     []Edit
		pending *Edit
		off     int
	)
	flush := func() {
		if pending != nil {
			out = append(out, *pending)
			pending = nil
		}
	}
	open := func() *Edit {
		if pending == nil {
			pending = &Edit{Offset: off}
		}
		return pending
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			off += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffDelete:
			e := open()
			e.Deleted += d.Text
			off += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffInsert:
			e := open()
			e.Inserted += d.Text
		}
	}
	flush()
	return out
}
