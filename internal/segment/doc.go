// Package segment finds enclosed colorable regions in generated line art and
// annotates them for color-by-number pages.
//
// The engine scans a decoded image for light enclosed areas using a
// stride-seeded, visited-mask flood fill, accepts regions large enough to be
// colored, assigns each a label from a fixed five-entry legend, and renders
// the labels at region centroids plus a legend strip below the image.
//
// Everything here is pure over an owned pixel buffer: each call allocates its
// own visited mask and region list, so independent pages can be segmented
// concurrently with no shared state. Annotation is best-effort by contract;
// it never fails the caller, returning the input image unchanged instead.
package segment
