package region

// InsertText types text at the caret, replacing a non-empty selection.
func (r *Region) InsertText(s string) bool {
	if s == "" {
		return false
	}
	return r.ReplaceSelection(s)
}

// InsertNewline types a line break at the caret.
func (r *Region) InsertNewline() bool { return r.InsertText("\n") }

// DeleteBackward applies backspace semantics: a non-empty selection is
// removed, otherwise the grapheme before the caret.
func (r *Region) DeleteBackward() bool {
	rng, ok := r.Selection()
	if !ok {
		return false
	}
	if !rng.Collapsed() {
		return r.ReplaceSelection("")
	}
	end := rng.Focus
	if end == 0 {
		return false
	}
	start := r.prevBoundary(end)
	r.Collapse(r.replace(start, end, ""))
	return true
}

// DeleteForward applies delete-key semantics: a non-empty selection is
// removed, otherwise the grapheme after the caret.
func (r *Region) DeleteForward() bool {
	rng, ok := r.Selection()
	if !ok {
		return false
	}
	if !rng.Collapsed() {
		return r.ReplaceSelection("")
	}
	start := rng.Focus
	if start >= len(r.text) {
		return false
	}
	end := r.nextBoundary(start)
	r.Collapse(r.replace(start, end, ""))
	return true
}
