// Package imaging provides the pixel-level foundation of the field-tint
// engine: normalized floating-point image buffers, RGB/HSL color-space
// conversion, file loading and saving, and color sampling.
//
// All higher-level stages (influence fields, curve adjustment, the pipeline)
// operate on the types defined here. Images are stored as flat row-major
// buffers of RGB triples with components normalized into [0, 1]; the HSL
// working representation keeps hue in degrees [0, 360) and saturation and
// lightness in [0, 1].
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Image and HSLBuffer values
// are treated as immutable after construction; conversions allocate fresh
// output buffers and process rows in parallel with disjoint writes, so they
// may be called concurrently on shared inputs.
//
// # Numeric Degeneracy
//
// Achromatic pixels (r == g == b) have no defined hue. RGBToHSL fixes their
// hue at 0 and saturation at 0 by convention; HSLToRGB maps s == 0 back to
// r = g = b = l exactly. This is a handled case throughout, never an error.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - File I/O errors during image loading
//   - Encoding errors during image output
package imaging
