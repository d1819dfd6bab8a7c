package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PageImageResult packages a rendered page for the MCP tool surface.
type PageImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNGBase64 encodes an image as a base64 PNG string.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// NewPageImageResult encodes an image into a PageImageResult payload.
func NewPageImageResult(img image.Image) (*PageImageResult, error) {
	encoded, err := EncodePNGBase64(img)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &PageImageResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// NormalizeToPage scales an image to the given page width, preserving the
// aspect ratio. Generated line art arrives at whatever size the service
// chose; the document layer expects pages at a uniform width. Images already
// at the target width are returned unchanged.
func NormalizeToPage(img image.Image, pageWidth int) (image.Image, error) {
	if pageWidth <= 0 {
		return nil, fmt.Errorf("invalid page width %d", pageWidth)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("cannot normalize empty image")
	}
	if bounds.Dx() == pageWidth {
		return img, nil
	}
	// Height 0 preserves aspect ratio.
	return imaging.Resize(img, pageWidth, 0, imaging.Lanczos), nil
}
