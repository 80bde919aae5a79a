// Package pipeline orchestrates the field-tint stages into one run:
// decode, normalize, HSL conversion, influence-field computation, field
// composition, curve adjustment, RGB conversion, quantization, and encode.
//
// A run is synchronous and CPU-bound; there is no I/O inside the per-pixel
// stages, no randomness, and no time-dependent state, so identical input and
// configuration always produce byte-identical output. Errors fail the run
// fast: configuration problems are caught before the input file is opened
// and no output file is written on any failure.
package pipeline
