package segment

import (
	"image"
	"math/rand"
	"time"

	"github.com/anthonynsimon/bild/clone"

	"github.com/johnalai/Dream-Color/internal/imaging"
)

// Default scan parameters. These match the behavior tuned against the
// generative service's output: a coarse seed grid keeps scanning cheap on
// large pages, the border margin avoids edge artifacts from the service, and
// the minimum pixel count filters out gaps between outline strokes.
const (
	DefaultStride          = 4
	DefaultBorderMargin    = 10
	DefaultMinRegionPixels = 800
)

// Options controls a segmentation run. The zero value selects the defaults
// above with a time-seeded label RNG.
type Options struct {
	// Stride is the seed-grid spacing in pixels along both axes.
	Stride int

	// BorderMargin is the width of the image border excluded from seeding.
	BorderMargin int

	// BrightnessMin overrides the per-channel colorable threshold.
	// Zero selects imaging.BrightnessMin.
	BrightnessMin uint8

	// MinRegionPixels is the minimum pixel count for an accepted region.
	MinRegionPixels int

	// Seed pins the label RNG for reproducible output. Zero seeds from the
	// clock, matching the interactive behavior where each generation gets
	// fresh label placement.
	Seed int64
}

func (o Options) withDefaults() Options {
	if o.Stride <= 0 {
		o.Stride = DefaultStride
	}
	if o.BorderMargin <= 0 {
		o.BorderMargin = DefaultBorderMargin
	}
	if o.BrightnessMin == 0 {
		o.BrightnessMin = imaging.BrightnessMin
	}
	if o.MinRegionPixels <= 0 {
		o.MinRegionPixels = DefaultMinRegionPixels
	}
	return o
}

// Region is one accepted colorable area. Regions are ephemeral: they are
// produced by a single scan, consumed to stamp labels, and discarded.
type Region struct {
	// CentroidX, CentroidY is the mean pixel position of the region.
	CentroidX int `json:"centroid_x"`
	CentroidY int `json:"centroid_y"`

	// PixelCount is the number of pixels the flood fill visited.
	PixelCount int `json:"pixel_count"`

	// Bounds is the region's bounding box.
	Bounds image.Rectangle `json:"-"`

	// Label is the assigned legend label in [1, LegendSize].
	Label int `json:"label"`
}

// FindRegions scans an image for enclosed colorable regions.
//
// # Algorithm
//
//  1. Normalize the input to an RGBA buffer and allocate a visited mask,
//     one entry per pixel, for this run only.
//  2. Walk seed candidates on a Stride grid across the image interior,
//     skipping a BorderMargin frame.
//  3. Seeds that are not colorable (any channel at or below BrightnessMin)
//     are marked visited and skipped; dark pixels never start a fill, and
//     fills never cross them, so ink outlines bound every region.
//  4. Colorable unvisited seeds start a 4-connected, queue-based flood fill
//     over a flattened 1-D index. A horizontal neighbor is rejected when its
//     column differs from the current column by more than one, which stops
//     the fill from wrapping across row ends.
//  5. A completed fill is accepted when its pixel count exceeds
//     MinRegionPixels and the pixel at the rounded centroid is itself
//     colorable (concave regions can place the centroid outside the region).
//     Rejected fills stay visited and are never revisited.
//  6. Accepted regions draw a label uniformly at random from
//     [1, LegendSize].
//
// Work is O(W*H) for the mask plus O(region pixels) per fill; memory is one
// mask plus one fill queue, both scoped to this call.
func FindRegions(img image.Image, opts Options) []Region {
	opts = opts.withDefaults()

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	rgba := clone.AsRGBA(img)
	visited := make([]bool, width*height)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var regions []Region
	for y := opts.BorderMargin; y < height-opts.BorderMargin; y += opts.Stride {
		for x := opts.BorderMargin; x < width-opts.BorderMargin; x += opts.Stride {
			idx := y*width + x
			if visited[idx] {
				continue
			}
			if !colorableAt(rgba, idx, opts.BrightnessMin) {
				visited[idx] = true
				continue
			}

			region := floodFill(rgba, visited, idx, width, height, opts.BrightnessMin)

			if region.PixelCount <= opts.MinRegionPixels {
				continue
			}
			centroidIdx := region.CentroidY*width + region.CentroidX
			if !colorableAt(rgba, centroidIdx, opts.BrightnessMin) {
				continue
			}

			region.Label = 1 + rng.Intn(LegendSize)
			regions = append(regions, region)
		}
	}

	return regions
}

// floodFill grows a region from a seed index across 4-connected colorable
// pixels, accumulating count, centroid, and bounding box. It is iterative
// and queue-based; large white areas must not recurse.
func floodFill(rgba *image.RGBA, visited []bool, seedIdx, width, height int, brightnessMin uint8) Region {
	queue := make([]int, 0, 256)
	queue = append(queue, seedIdx)
	visited[seedIdx] = true

	var count int
	var sumX, sumY int64
	minX, minY := width, height
	maxX, maxY := 0, 0

	for head := 0; head < len(queue); head++ {
		idx := queue[head]

		x := idx % width
		y := idx / width

		count++
		sumX += int64(x)
		sumY += int64(y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}

		// Left/right neighbors are index-adjacent in the flattened buffer,
		// so guard against wrapping across a row boundary by checking the
		// column delta.
		neighbors := [4]int{idx - 1, idx + 1, idx - width, idx + width}
		for _, n := range neighbors {
			if n < 0 || n >= width*height {
				continue
			}
			nx := n % width
			if nx-x > 1 || x-nx > 1 {
				continue
			}
			if visited[n] {
				continue
			}
			if !colorableAt(rgba, n, brightnessMin) {
				visited[n] = true
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return Region{
		CentroidX:  int(sumX / int64(count)),
		CentroidY:  int(sumY / int64(count)),
		PixelCount: count,
		Bounds:     image.Rect(minX, minY, maxX+1, maxY+1),
	}
}

// colorableAt reports whether the pixel at a flattened index is colorable
// background under the given threshold.
func colorableAt(rgba *image.RGBA, idx int, brightnessMin uint8) bool {
	i := idx * 4
	return rgba.Pix[i] > brightnessMin && rgba.Pix[i+1] > brightnessMin && rgba.Pix[i+2] > brightnessMin
}
