package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestNewPageImageResult(t *testing.T) {
	img := fillImage(20, 30, color.White)

	result, err := NewPageImageResult(img)
	if err != nil {
		t.Fatalf("NewPageImageResult failed: %v", err)
	}

	if result.Width != 20 || result.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 20x30", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	// Payload must round-trip back to a decodable PNG of the same size.
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("payload is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 20 || decoded.Bounds().Dy() != 30 {
		t.Errorf("decoded dimensions: got %v", decoded.Bounds())
	}
}

func TestNormalizeToPage(t *testing.T) {
	img := fillImage(200, 100, color.White)

	out, err := NormalizeToPage(img, 400)
	if err != nil {
		t.Fatalf("NormalizeToPage failed: %v", err)
	}
	if out.Bounds().Dx() != 400 {
		t.Errorf("width: got %d, want 400", out.Bounds().Dx())
	}
	if out.Bounds().Dy() != 200 {
		t.Errorf("height: got %d, want 200 (aspect preserved)", out.Bounds().Dy())
	}
}

func TestNormalizeToPage_AlreadyAtWidth(t *testing.T) {
	img := fillImage(400, 100, color.White)

	out, err := NormalizeToPage(img, 400)
	if err != nil {
		t.Fatalf("NormalizeToPage failed: %v", err)
	}
	if out != image.Image(img) {
		t.Error("image already at page width should be returned unchanged")
	}
}

func TestNormalizeToPage_Invalid(t *testing.T) {
	img := fillImage(10, 10, color.White)
	if _, err := NormalizeToPage(img, 0); err == nil {
		t.Error("expected error for zero page width")
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := NormalizeToPage(empty, 100); err == nil {
		t.Error("expected error for empty image")
	}
}
