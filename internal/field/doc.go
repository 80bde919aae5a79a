// Package field computes radial influence fields for configured focus points
// and merges them into a composite weight map.
//
// A focus point is a spatial center with a radius of influence: its field
// assigns every pixel a weight that is 1 at the center, falls off linearly
// with Euclidean distance, and reaches 0 at the radius. The composite of all
// fields carries, per pixel, the clipped sum of the individual weights plus
// the identity of the dominant focus (strictly greatest weight, earliest
// registered wins ties).
//
// Fields have no cross-pixel dependencies, so both computation and
// composition run row-parallel with disjoint output writes.
package field
