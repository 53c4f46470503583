package textbox

import "unicode/utf8"

// handleInput reconciles the buffer with the region after the region content
// changed. Over-long or disabled edits are reverted and the caret goes to the
// end; the mid-edit caret position is not preserved.
func (m *Model) handleInput() {
	next := m.region.Text()
	if m.cfg.Disabled || !m.withinLimit(next) {
		m.log.Debug("input rejected",
			"length", utf8.RuneCountInString(next),
			"max", m.maxLength(),
			"disabled", m.cfg.Disabled,
		)
		m.region.SetText(m.content)
		m.caretToEnd()
		m.dirty = true
		return
	}
	m.commit(next, CauseInput)
}

// commit makes next the accepted content. The region must already show it.
func (m *Model) commit(next string, cause Cause) {
	m.dirty = true
	prev := m.content
	if next == prev {
		return
	}
	m.content = next
	if cause.recorded() && m.caps.Has(CapUndoHistory) {
		m.history.push(next)
	}
	m.notifyChange(prev, next, cause)
}

// notifyChange reports an accepted change. Content over the length cap, which
// only an external override can produce, is not reported.
func (m *Model) notifyChange(prev, next string, cause Cause) {
	if !m.withinLimit(next) {
		return
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(next)
	}
	if m.cfg.OnEdit != nil {
		m.cfg.OnEdit(ChangeEvent{
			Text:     next,
			Previous: prev,
			Cause:    cause,
			Edits:    diffEdits(prev, next),
		})
	}
}

// SetUpdatedContent replaces the content from outside, for example to reset
// or clear the text box. A value is applied once: passing the same value
// again does nothing until it changes or ClearUpdatedContent is called.
// Overrides are not checked against MaxLength and do not enter the undo
// history.
func (m Model) SetUpdatedContent(content string) Model {
	if m.region == nil || !m.caps.Has(CapExternalOverride) {
		return m
	}
	if m.override.set && m.override.value == content {
		return m
	}
	m.override = overrideState{set: true, value: content}

	prev := m.content
	m.content = content
	m.region.SetText(content)
	m.dirty = true
	if m.cfg.OnContentExternalUpdate != nil {
		m.cfg.OnContentExternalUpdate(content)
	}
	if prev != content {
		m.notifyChange(prev, content, CauseExternal)
	}
	m.settle()
	return m
}

// ClearUpdatedContent forgets the last override value without touching the
// content.
func (m Model) ClearUpdatedContent() Model {
	m.override = overrideState{}
	return m
}
