package segment

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LegendSize is the number of entries in a legend; label ids cycle in
// [1, LegendSize].
const LegendSize = 5

// LegendEntry maps a label id to the color a child should use for regions
// carrying that label.
type LegendEntry struct {
	Label int    `json:"label"` // Label id in [1, LegendSize]
	Name  string `json:"name"`  // Human-readable color name
	Hex   string `json:"hex"`   // Swatch color "#RRGGBB"
}

// Legend is the fixed label-to-color table rendered below every annotated
// image. It is process-wide constant configuration; never mutate it.
type Legend [LegendSize]LegendEntry

// DefaultLegend returns the standard five-color legend.
func DefaultLegend() Legend {
	return Legend{
		{Label: 1, Name: "Red", Hex: "#E53935"},
		{Label: 2, Name: "Blue", Hex: "#1E88E5"},
		{Label: 3, Name: "Green", Hex: "#43A047"},
		{Label: 4, Name: "Yellow", Hex: "#FDD835"},
		{Label: 5, Name: "Orange", Hex: "#FB8C00"},
	}
}

// swatchColor converts a legend entry's hex swatch into a drawable color.
// Malformed hex values fall back to black rather than failing annotation.
func (e LegendEntry) swatchColor() color.RGBA {
	c, err := colorful.Hex(e.Hex)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
