package imaging

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ColorResult contains a sampled color value in multiple representations.
//
// The same color is reported in three formats to suit different use cases:
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Quantized 8-bit components
//   - HSL: The engine's working space, with full floating-point precision
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#rrggbb"
	RGB RGBColor `json:"rgb"` // Quantized RGB components
	HSL HSL      `json:"hsl"` // HSL representation (H in degrees, S/L in [0,1])
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The normalized image buffer to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// The HSL field reports the exact working-space value the adjustment engine
// sees, before any 8-bit quantization; the Hex and RGB fields report the
// quantized value a saved output file would contain.
func SampleColor(img *Image, x, y int) (*ColorResult, error) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, img.Width, img.Height)
	}

	r, g, b := img.At(x, y)
	c := colorful.Color{R: r, G: g, B: b}.Clamped()

	return &ColorResult{
		Hex: c.Hex(),
		RGB: RGBColor{R: quantize(r), G: quantize(g), B: quantize(b)},
		HSL: RGBToHSL(r, g, b),
	}, nil
}
