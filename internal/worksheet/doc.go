// Package worksheet procedurally composes handwriting-practice pages: ruled
// guide lines, repeated letter glyphs, and a dash-masked rendering of the
// glyphs for tracing. No external image service is involved; the page is
// synthesized entirely from layout rules.
//
// Guide lines are drawn directly on the page surface while glyphs go onto a
// separate transparent layer. A diagonal-stripe tile is then applied to the
// glyph layer as an erase mask, turning solid strokes into dashed ones, and
// the layer is composited over the page last. Keeping the two surfaces apart
// is what stops the mask from chewing up the guide lines.
//
// Rendering is deterministic: the same Spec always yields a pixel-identical
// page.
package worksheet
