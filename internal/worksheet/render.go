package worksheet

import (
	"image"
	"image/color"
	"image/draw"

	dimaging "github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/johnalai/Dream-Color/internal/fonts"
)

// Guide-line and glyph colors.
var (
	guideTopInk  = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	guideMidInk  = color.RGBA{R: 60, G: 120, B: 216, A: 255}
	guideBaseInk = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	glyphInk     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	headerInk    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Midline display dash (purely visual, unrelated to the erase mask).
const (
	midDashOn  = 12
	midDashOff = 8
)

// repeatSpacing is the gap between tiled display pairs on a repeat row.
const repeatSpacing = 40

// Spec describes one worksheet page: the letters to practice, in order, and
// the font selector for the glyphs. The compositor consumes it once and
// retains nothing.
type Spec struct {
	// Letters is an ordered list of single letters.
	Letters []string `json:"letters"`

	// Font is a fonts package selector; empty means the default.
	Font string `json:"font"`
}

// Render composes a worksheet page for the given spec. It never fails: an
// empty letter list produces a page containing only the header.
//
// Guide lines are drawn on the page surface, glyphs on a separate
// transparent layer that is dash-masked and then composited over the page,
// so the mask can only ever erase glyph strokes.
func Render(spec Spec) *image.NRGBA {
	page := dimaging.New(PageWidth, PageHeight, color.White)

	drawHeader(page, spec.Font)

	layout := ComputeLayout(spec.Letters)
	if len(layout.Rows) == 0 {
		return page
	}

	glyphLayer := image.NewRGBA(image.Rect(0, 0, PageWidth, PageHeight))
	face := fonts.Face(spec.Font, float64(layout.FontSize))

	for _, row := range layout.Rows {
		hline(page, MarginLeft, PageWidth-MarginRight, row.Guides.Top, guideTopInk)
		dashedHLine(page, MarginLeft, PageWidth-MarginRight, row.Guides.Mid, guideMidInk)
		hline(page, MarginLeft, PageWidth-MarginRight, row.Guides.Baseline, guideBaseInk)

		pair := displayPair(row.Letter)
		if row.Repeat {
			tilePair(glyphLayer, face, pair, row.Guides.Baseline)
		} else {
			drawText(glyphLayer, face, pair, MarginLeft, row.Guides.Baseline)
		}
	}

	applyDashMask(glyphLayer, dashTile())
	draw.Draw(page, page.Bounds(), glyphLayer, image.Point{}, draw.Over)

	return page
}

// drawHeader renders the "Name:" line and its blank rule near the page top.
func drawHeader(page *image.NRGBA, fontSelector string) {
	face := fonts.Face(fontSelector, headerFontSize)
	d := &font.Drawer{
		Dst:  page,
		Src:  image.NewUniform(headerInk),
		Face: face,
		Dot:  fixed.P(MarginLeft, HeaderBaselineY),
	}
	d.DrawString("Name:")

	ruleStart := d.Dot.X.Ceil() + 20
	hline(page, ruleStart, PageWidth-MarginRight, HeaderBaselineY+4, guideBaseInk)
}

// tilePair repeats the display pair left to right until the next repetition
// would cross the right margin.
func tilePair(layer *image.RGBA, face font.Face, pair string, baseline int) {
	pairWidth := font.MeasureString(face, pair).Ceil()
	if pairWidth <= 0 {
		return
	}
	for x := MarginLeft; x+pairWidth <= PageWidth-MarginRight; x += pairWidth + repeatSpacing {
		drawText(layer, face, pair, x, baseline)
	}
}

// drawText draws a string with its baseline origin at (x, y).
func drawText(dst draw.Image, face font.Face, text string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(glyphInk),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// hline draws a solid 2px horizontal line spanning [x1, x2).
func hline(dst draw.Image, x1, x2, y int, c color.Color) {
	for x := x1; x < x2; x++ {
		dst.Set(x, y, c)
		dst.Set(x, y+1, c)
	}
}

// dashedHLine draws a 2px horizontal line with a fixed on/off dash phase.
func dashedHLine(dst draw.Image, x1, x2, y int, c color.Color) {
	period := midDashOn + midDashOff
	for x := x1; x < x2; x++ {
		if (x-x1)%period >= midDashOn {
			continue
		}
		dst.Set(x, y, c)
		dst.Set(x, y+1, c)
	}
}
