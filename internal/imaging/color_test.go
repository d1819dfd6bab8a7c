package imaging

import (
	"image"
	"image/color"
	"testing"
)

// fillImage creates an in-memory image filled with a single color.
func fillImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestColorable(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    bool
	}{
		{"pure white", 255, 255, 255, true},
		{"near white", 220, 210, 230, true},
		{"at threshold", 200, 200, 200, false}, // threshold is exclusive
		{"one dark channel", 255, 255, 100, false},
		{"black", 0, 0, 0, false},
		{"mid gray", 128, 128, 128, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Colorable(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Colorable(%d,%d,%d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestSampleColor(t *testing.T) {
	img := fillImage(10, 10, color.RGBA{255, 0, 0, 255})

	result, err := SampleColor(img, 5, 5)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF0000" {
		t.Errorf("Hex: got %s, want #FF0000", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 0 || result.RGB.B != 0 {
		t.Errorf("RGB: got %+v, want 255,0,0", result.RGB)
	}
	if result.Colorable {
		t.Error("pure red should not be colorable background")
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := fillImage(10, 10, color.White)

	if _, err := SampleColor(img, 10, 5); err == nil {
		t.Error("expected error for x out of bounds")
	}
	if _, err := SampleColor(img, 5, -1); err == nil {
		t.Error("expected error for negative y")
	}
}

func TestCheckLineArt_WhitePageWithInk(t *testing.T) {
	// Mostly white with a black border: classic line art.
	img := fillImage(100, 100, color.White)
	for x := 0; x < 100; x++ {
		img.Set(x, 0, color.Black)
		img.Set(x, 99, color.Black)
	}

	result := CheckLineArt(img)
	if !result.IsLineArt {
		t.Errorf("white page with ink border should pass: %+v", result)
	}
	if result.ColorablePct < 90 {
		t.Errorf("ColorablePct: got %.1f, want >= 90", result.ColorablePct)
	}
	if result.InkPct <= 0 {
		t.Errorf("InkPct: got %.1f, want > 0", result.InkPct)
	}
}

func TestCheckLineArt_FullColorFails(t *testing.T) {
	// A mid-tone fill is neither colorable nor ink.
	img := fillImage(50, 50, color.RGBA{180, 140, 90, 255})

	result := CheckLineArt(img)
	if result.IsLineArt {
		t.Errorf("mid-tone fill should fail the contract: %+v", result)
	}
	if result.IntermediatePct < 99 {
		t.Errorf("IntermediatePct: got %.1f, want ~100", result.IntermediatePct)
	}
}

func TestCheckLineArt_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))

	result := CheckLineArt(img)
	if result.IsLineArt {
		t.Error("empty image should not pass")
	}
	if result.Width != 0 || result.Height != 0 {
		t.Errorf("dimensions: got %dx%d, want 0x0", result.Width, result.Height)
	}
}
