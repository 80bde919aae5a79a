package imaging

import "math"

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is the working space for all field adjustments because its axes map
// directly onto the adjustment parameters:
//   - Hue is the color angle on the color wheel (cyclic)
//   - Saturation is color intensity (gray to vivid)
//   - Lightness is brightness (black to white)
//
// Invariants, maintained by every function in this package that produces
// an HSL value:
//   - H is always wrapped into [0, 360)
//   - S and L are always clamped into [0, 1]
type HSL struct {
	H float64 `json:"h"` // Hue: degrees in [0, 360)
	S float64 `json:"s"` // Saturation: [0, 1]
	L float64 `json:"l"` // Lightness: [0, 1]
}

// RGBToHSL converts normalized RGB components to HSL.
//
// Parameters:
//   - r, g, b: color components in [0, 1]
//
// Returns the HSL representation with H in degrees [0, 360) and S, L in [0, 1].
//
// # Achromatic Pixels
//
// When r == g == b the hue is mathematically undefined. By convention the
// result is H=0, S=0, L=r. This is a defined degenerate case, not an error,
// and callers must not "repair" the zero hue.
//
// # Algorithm
//
//  1. max and min of the three components; L = (max+min)/2
//  2. If max == min the pixel is achromatic: H=0, S=0
//  3. Otherwise d = max-min; S = d/(2-max-min) when L > 0.5, else d/(max+min)
//  4. H from the channel equal to max using the standard 60-degree sector
//     formula, reduced modulo 360
func RGBToHSL(r, g, b float64) HSL {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	l := (max + min) / 2

	if max == min {
		// Achromatic: hue fixed at 0 by convention.
		return HSL{H: 0, S: 0, L: clamp01(l)}
	}

	d := max - min

	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: wrapHue(h), S: clamp01(s), L: clamp01(l)}
}

// HSLToRGB converts an HSL color back to normalized RGB components.
//
// The conversion uses the standard chroma/intermediate/match construction:
//
//	c = (1 - |2l - 1|) * s
//	x = c * (1 - |(h/60) mod 2 - 1|)
//	m = l - c/2
//
// with (c, x, 0) permuted by 60-degree hue sector, then m added to each
// component. For s == 0 the result is r = g = b = l exactly.
//
// Round-trip contract: HSLToRGB(RGBToHSL(c)) reproduces c within
// floating-point tolerance for every non-achromatic c.
func HSLToRGB(p HSL) (r, g, b float64) {
	h := wrapHue(p.H)
	s := clamp01(p.S)
	l := clamp01(p.L)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return clamp01(r + m), clamp01(g + m), clamp01(b + m)
}

// Canon returns the color with the package invariants restored: hue wrapped
// into [0, 360), saturation and lightness clamped into [0, 1]. Adjustment
// code builds raw HSL values and canonicalizes them in one place.
func (p HSL) Canon() HSL {
	return HSL{H: wrapHue(p.H), S: clamp01(p.S), L: clamp01(p.L)}
}

// wrapHue reduces a hue angle into [0, 360), handling negative angles.
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clamp01 clamps v into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
