// Package analysis provides the collaborators that inspect pipeline output:
// a per-pixel color-difference map between two images and per-pixel
// statistics over a time series of frames.
//
// The color difference is the plain Euclidean distance in normalized RGB,
// useful for visualizing how strongly an adjustment changed each pixel; it
// makes no perceptual-uniformity claims. The time-series statistics extract
// a small feature vector per pixel per frame (R, G, B, vector magnitude) and
// compute per-pixel mean, standard deviation, z-scores, and min-max
// normalized z-scores across time.
//
// Both operations consume and produce plain buffers and have no coupling to
// the adjustment engine beyond the shared image type.
package analysis
