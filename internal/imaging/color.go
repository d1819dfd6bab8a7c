package imaging

import (
	"fmt"
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// BrightnessMin is the per-channel brightness threshold above which a pixel
// counts as colorable background. The generative service is asked to render
// colorable areas near pure white, so all three channels must exceed this
// value. The segment package uses the same threshold for flood-fill seeds.
const BrightnessMin = 200

// inkLuminanceMax is the CIE Y luminance (0..1) below which a pixel counts
// as outline ink.
const inkLuminanceMax = 0.25

// Colorable reports whether an 8-bit RGB sample is light enough to be
// treated as colorable background.
func Colorable(r, g, b uint8) bool {
	return r > BrightnessMin && g > BrightnessMin && b > BrightnessMin
}

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a sampled color value in multiple representations,
// plus its classification under the line-art contract.
type ColorResult struct {
	Hex       string    `json:"hex"`       // Hex format "#RRGGBB" (no alpha)
	RGB       RGBColor  `json:"rgb"`       // RGB components
	RGBA      RGBAColor `json:"rgba"`      // RGBA components with alpha
	HSL       HSLColor  `json:"hsl"`       // HSL representation
	Colorable bool      `json:"colorable"` // True if this pixel is colorable background
}

// SampleColor extracts the color value at a specific pixel coordinate.
// Returns an error if the coordinates fall outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	// Convert from 16-bit to 8-bit
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	c := colorful.Color{R: float64(r8) / 255, G: float64(g8) / 255, B: float64(b8) / 255}
	h, s, l := c.Hsl()

	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB:  RGBColor{R: r8, G: g8, B: b8},
		RGBA: RGBAColor{R: r8, G: g8, B: b8, A: a8},
		HSL: HSLColor{
			H: int(h + 0.5),
			S: int(s*100 + 0.5),
			L: int(l*100 + 0.5),
		},
		Colorable: Colorable(r8, g8, b8),
	}, nil
}

// LineArtResult reports how well an image honors the line-art input
// contract: colorable background near pure white, outlines in dark ink.
type LineArtResult struct {
	// Width of the inspected image in pixels.
	Width int `json:"width"`

	// Height of the inspected image in pixels.
	Height int `json:"height"`

	// ColorablePct is the percentage of pixels classified as colorable
	// background (0-100).
	ColorablePct float64 `json:"colorable_pct"`

	// InkPct is the percentage of pixels classified as dark outline ink
	// (0-100).
	InkPct float64 `json:"ink_pct"`

	// IntermediatePct is the percentage of pixels that are neither
	// colorable nor ink (0-100). Shading, gradients, and color fills all
	// land here.
	IntermediatePct float64 `json:"intermediate_pct"`

	// IsLineArt is the overall verdict: enough colorable background and
	// little enough intermediate tone for segmentation to work.
	IsLineArt bool `json:"is_line_art"`
}

// CheckLineArt classifies every pixel of an image and reports whether the
// image is usable as coloring-page line art.
//
// A pixel is colorable when all channels exceed BrightnessMin, ink when its
// CIE luminance falls below the ink threshold, and intermediate otherwise.
// The verdict requires at least 40% colorable background and at most 15%
// intermediate tone; images that fail should be regenerated rather than
// segmented.
func CheckLineArt(img image.Image) *LineArtResult {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	total := width * height
	if total == 0 {
		return &LineArtResult{Width: width, Height: height}
	}

	var colorable, ink int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
			if Colorable(r8, g8, b8) {
				colorable++
				continue
			}
			c := colorful.Color{R: float64(r8) / 255, G: float64(g8) / 255, B: float64(b8) / 255}
			if _, lum, _ := c.Xyz(); lum < inkLuminanceMax {
				ink++
			}
		}
	}

	intermediate := total - colorable - ink
	result := &LineArtResult{
		Width:           width,
		Height:          height,
		ColorablePct:    float64(colorable) * 100 / float64(total),
		InkPct:          float64(ink) * 100 / float64(total),
		IntermediatePct: float64(intermediate) * 100 / float64(total),
	}
	result.IsLineArt = result.ColorablePct >= 40 && result.IntermediatePct <= 15
	return result
}
