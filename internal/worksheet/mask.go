package worksheet

import (
	"image"
	"image/color"
)

// Dash mask geometry: a small square tile with one diagonal opaque stripe,
// repeated across the glyph layer as an erase mask. Tile layout is fixed, so
// dash placement never varies between renders.
const (
	dashTileSize    = 16
	dashStripeWidth = 6
)

// dashTile builds the diagonal-stripe erase tile. Opaque pixels mark where
// glyph strokes will be erased.
func dashTile() *image.Alpha {
	tile := image.NewAlpha(image.Rect(0, 0, dashTileSize, dashTileSize))
	for y := 0; y < dashTileSize; y++ {
		for x := 0; x < dashTileSize; x++ {
			if (x+y)%dashTileSize < dashStripeWidth {
				tile.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return tile
}

// applyDashMask erases every glyph-layer pixel covered by the tiled stripe,
// turning solid strokes into dashed tracing strokes. The standard draw
// package has no erase operator, so this clears pixels directly.
func applyDashMask(layer *image.RGBA, tile *image.Alpha) {
	bounds := layer.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if tile.AlphaAt(x%dashTileSize, y%dashTileSize).A == 0 {
				continue
			}
			i := layer.PixOffset(x, y)
			layer.Pix[i] = 0
			layer.Pix[i+1] = 0
			layer.Pix[i+2] = 0
			layer.Pix[i+3] = 0
		}
	}
}
