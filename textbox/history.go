package textbox

// history is a linear undo/redo stack of accepted contents. The top of undo
// is the current content.
type history struct {
	undo  []string
	redo  []string
	limit int
}

func newHistory(initial string, limit int) history {
	return history{undo: []string{initial}, limit: limit}
}

// push records a new accepted content. A fresh edit abandons whatever was
// undone before it.
func (h *history) push(s string) {
	h.undo = append(h.undo, s)
	h.trim()
	h.redo = nil
}

func (h *history) canUndo() bool { return len(h.undo) > 1 }

func (h *history) canRedo() bool { return len(h.redo) > 0 }

// stepBack moves the current content to redo and returns the one below it.
func (h *history) stepBack() (string, bool) {
	if !h.canUndo() {
		return "", false
	}
	i := len(h.undo) - 1
	h.redo = append(h.redo, h.undo[i])
	h.undo = h.undo[:i]
	return h.undo[i-1], true
}

// stepForward moves the last undone content back onto undo and returns it.
func (h *history) stepForward() (string, bool) {
	if !h.canRedo() {
		return "", false
	}
	i := len(h.redo) - 1
	next := h.redo[i]
	h.redo = h.redo[:i]
	h.undo = append(h.undo, next)
	h.trim()
	return next, true
}

func (h *history) trim() {
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

func (m *Model) undo() bool {
	prev, ok := m.history.stepBack()
	if !ok {
		return false
	}
	m.restore(prev, CauseUndo)
	return true
}

func (m *Model) redo() bool {
	next, ok := m.history.stepForward()
	if !ok {
		return false
	}
	m.restore(next, CauseRedo)
	return true
}

func (m *Model) restore(s string, cause Cause) {
	m.log.Debug("history restore", "cause", cause.String())
	m.region.SetText(s)
	m.caretToEnd()
	m.commit(s, cause)
}
