// Package fonts resolves worksheet font selectors to renderable font faces.
//
// The orchestrating UI exposes a small closed set of font styles ("print",
// "comic", "school", "mono") rather than raw font file paths. This package
// maps each selector to a list of candidate system fonts, located via
// go-findfont, and falls back to a font embedded in the Go font family when
// no system font matches. Resolution never fails: the fallback chain always
// ends at an embedded face.
//
// The selector table is immutable static configuration. Parsed fonts are
// cached process-wide and are safe for concurrent use; font.Face values
// returned by Face are not safe for concurrent use and should be created
// per render call.
package fonts
