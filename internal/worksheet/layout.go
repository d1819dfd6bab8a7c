package worksheet

import "strings"

// Page geometry. A4 portrait at 150 DPI.
const (
	PageWidth  = 1240
	PageHeight = 1754

	MarginLeft   = 60
	MarginRight  = 60
	MarginBottom = 60

	// HeaderBaselineY is the baseline of the "Name:" header; the row cursor
	// starts at HeaderBottom.
	HeaderBaselineY = 90
	HeaderBottom    = 150
	headerFontSize  = 40
)

// Row sizing. Every letter gets two rows; row height adapts to the letter
// count within fixed bounds, and the glyph size follows the row.
const (
	RowsPerLetter = 2
	MinRowHeight  = 120
	MaxRowHeight  = 220
	glyphScale    = 0.65
)

// GuideLines holds the three ruled-line y-coordinates of one practice row.
type GuideLines struct {
	Top      int `json:"top"`      // solid gray
	Mid      int `json:"mid"`      // dashed blue
	Baseline int `json:"baseline"` // solid black
}

// Row is one horizontal practice slot.
type Row struct {
	// Letter is the single letter this row practices.
	Letter string `json:"letter"`

	// Repeat marks the first row of each letter, where the display pair is
	// tiled across the width; the second row shows a single instance.
	Repeat bool `json:"repeat"`

	// Y is the top of the row slot.
	Y int `json:"y"`

	// Guides are the ruled-line positions within the slot.
	Guides GuideLines `json:"guides"`
}

// Layout is the computed geometry of a worksheet page.
type Layout struct {
	RowHeight int   `json:"row_height"`
	FontSize  int   `json:"font_size"`
	Rows      []Row `json:"rows"`
}

// ComputeLayout derives the full row geometry for a letter list. It is pure:
// identical input yields identical geometry, and an empty list yields a
// header-only layout with no rows.
func ComputeLayout(letters []string) Layout {
	if len(letters) == 0 {
		return Layout{}
	}

	available := PageHeight - HeaderBottom - MarginBottom
	rowHeight := available / (len(letters) * RowsPerLetter)
	if rowHeight < MinRowHeight {
		rowHeight = MinRowHeight
	}
	if rowHeight > MaxRowHeight {
		rowHeight = MaxRowHeight
	}

	layout := Layout{
		RowHeight: rowHeight,
		FontSize:  int(glyphScale * float64(rowHeight)),
		Rows:      make([]Row, 0, len(letters)*RowsPerLetter),
	}

	cursor := HeaderBottom
	for _, letter := range letters {
		for rowIdx := 0; rowIdx < RowsPerLetter; rowIdx++ {
			layout.Rows = append(layout.Rows, Row{
				Letter: letter,
				Repeat: rowIdx == 0,
				Y:      cursor,
				Guides: guidesFor(cursor, rowHeight),
			})
			cursor += rowHeight
		}
	}

	return layout
}

// guidesFor places the three ruled lines at fixed fractions of the row slot.
func guidesFor(y, rowHeight int) GuideLines {
	return GuideLines{
		Top:      y + rowHeight*15/100,
		Mid:      y + rowHeight*45/100,
		Baseline: y + rowHeight*75/100,
	}
}

// displayPair builds the practiced glyph pair for a letter, e.g. "A" -> "Aa".
func displayPair(letter string) string {
	return strings.ToUpper(letter) + strings.ToLower(letter)
}
