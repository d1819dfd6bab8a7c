package segment

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"strconv"

	dimaging "github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/johnalai/Dream-Color/internal/fonts"
)

// FooterHeight is the height of the legend strip appended below the image.
const FooterHeight = 150

// Footer layout. Swatches sit on a common centerline with the color name
// below; the strip is divided into equal slots, one per legend entry.
const (
	swatchRadius      = 26
	swatchCenterY     = 58 // from the top of the footer
	labelFontSize     = 44
	legendNumberSize  = 30
	legendNameSize    = 20
	nameBaselineShift = 24 // below the swatch bottom
)

var (
	labelInk     = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	separatorInk = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// Annotate runs region segmentation over a line-art image and returns a new
// surface with label numbers stamped at region centroids and the legend
// strip rendered below the image.
//
// Annotation is a best-effort enhancement: a nil or empty input, or any
// internal rendering panic, yields the original image unchanged instead of
// an error. An image with no qualifying regions still gets its legend strip.
func Annotate(img image.Image, legend Legend, opts Options) image.Image {
	if img == nil || img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		return img
	}
	return AnnotateRegions(img, legend, FindRegions(img, opts))
}

// AnnotateRegions renders an already-computed region list onto a fresh
// surface with the legend strip. Callers that need both the region data and
// the annotated page use FindRegions once and pass the result here.
func AnnotateRegions(img image.Image, legend Legend, regions []Region) (out image.Image) {
	out = img
	if img == nil {
		return out
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return out
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("segment: annotation failed, returning original image: %v", r)
			out = img
		}
	}()

	canvas := dimaging.New(width, height+FooterHeight, color.White)
	canvas = dimaging.Paste(canvas, img, image.Pt(0, 0))

	labelFace := fonts.Face(fonts.DefaultSelector, labelFontSize)
	for _, region := range regions {
		drawCenteredText(canvas, labelFace, strconv.Itoa(region.Label), region.CentroidX, region.CentroidY, labelInk)
	}

	// Separator between the image and the legend strip.
	for x := 0; x < width; x++ {
		canvas.Set(x, height, separatorInk)
		canvas.Set(x, height+1, separatorInk)
	}

	numberFace := fonts.Face(fonts.DefaultSelector, legendNumberSize)
	nameFace := fonts.Face(fonts.DefaultSelector, legendNameSize)
	slot := width / LegendSize
	for i, entry := range legend {
		cx := slot*i + slot/2
		cy := height + swatchCenterY
		swatch := entry.swatchColor()

		drawCircleOutline(canvas, cx, cy, swatchRadius, swatch)
		drawCenteredText(canvas, numberFace, strconv.Itoa(entry.Label), cx, cy, swatch)
		drawCenteredText(canvas, nameFace, entry.Name, cx, cy+swatchRadius+nameBaselineShift, labelInk)
	}

	return canvas
}

// drawCenteredText draws text centered horizontally and vertically on
// (cx, cy).
func drawCenteredText(dst draw.Image, face font.Face, text string, cx, cy int, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	width := d.MeasureString(text)
	metrics := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.I(cx) - width/2,
		Y: fixed.I(cy) + (metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(text)
}

// drawCircleOutline draws a 2px circle outline centered on (cx, cy).
func drawCircleOutline(dst draw.Image, cx, cy, radius int, col color.Color) {
	steps := 8 * radius
	for _, r := range [2]int{radius, radius - 1} {
		for i := 0; i < steps; i++ {
			angle := 2 * math.Pi * float64(i) / float64(steps)
			x := cx + int(math.Round(float64(r)*math.Cos(angle)))
			y := cy + int(math.Round(float64(r)*math.Sin(angle)))
			dst.Set(x, y, col)
		}
	}
}
