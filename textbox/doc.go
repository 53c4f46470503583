// Package textbox provides a controlled Bubble Tea text box on top of a live
// editable region.
//
// The region is edited natively (typing, deletion and caret movement are
// applied to it before the text box sees the result). After every event the
// text box reconciles its own buffer with the region: it accepts the new
// content and reports it through OnChange, or rejects an over-long edit and
// restores the last accepted content. Pastes are reduced to plain text and
// truncated to the remaining length budget, and accepted states are kept in
// a linear undo/redo history.
package textbox
