// Package imaging provides the input/output layer for activity-book page
// rendering: loading generated line-art images, classifying pixels as
// colorable background or ink, validating that an image honors the line-art
// contract, and packaging rendered pages for the MCP tool surface.
//
// The generative image service is expected to deliver line art where the
// colorable background is near pure white (all channels above the brightness
// threshold) and outlines are dark ink. CheckLineArt verifies that contract
// before a page enters the segmentation pipeline; the same threshold drives
// region detection in the segment package.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. For regions, the top-left
// corner is inclusive and the bottom-right corner is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The classification and encoding
// functions are stateless and can be called concurrently on independent
// images.
package imaging
