// Package region implements the live editable surface a text box wraps.
//
// A Region is mutated from two directions: natively (typing, deletion, caret
// movement applied straight to the surface by the host platform) and by its
// owner, which reconciles its own model after each event. Offsets are 0-based
// rune offsets; ranges are half-open [Start, End).
package region
