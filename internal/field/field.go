package field

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// FocusPoint is one configured spatial center of influence.
//
// The center is specified as width/height fractions so the same configuration
// applies to any image size; the radius is in pixels. Each focus carries its
// own target hue and signed saturation/lightness directions, so an N-focus
// configuration is fully explicit rather than inferring direction from
// registration order. A FocusPoint is immutable for the duration of a run.
type FocusPoint struct {
	// Name identifies the focus in results and dominant-focus labels.
	Name string `json:"name"`

	// CenterXFraction and CenterYFraction locate the center as fractions of
	// the image width and height, each in [0, 1].
	CenterXFraction float64 `json:"center_x_fraction"`
	CenterYFraction float64 `json:"center_y_fraction"`

	// RadiusPixels is the distance at which influence falls to zero.
	// Must be > 0.
	RadiusPixels float64 `json:"radius_pixels"`

	// TargetHueDegrees is the hue this focus pulls pixels toward, in [0, 360).
	TargetHueDegrees float64 `json:"target_hue_degrees"`

	// SaturationSign and LightnessSign give the direction of the saturation
	// and lightness adjustments where this focus dominates. Each must be +1
	// or -1 after configuration defaulting.
	SaturationSign float64 `json:"saturation_sign"`
	LightnessSign  float64 `json:"lightness_sign"`
}

// Validate checks the focus configuration before any pixel work begins.
//
// Returns a descriptive error naming the offending parameter if the radius is
// not strictly positive, the target hue is outside [0, 360), a center
// fraction is outside [0, 1], or a sign is not exactly +1 or -1.
func (f FocusPoint) Validate() error {
	if f.RadiusPixels <= 0 {
		return fmt.Errorf("focus %q: radius_pixels must be > 0, got %v", f.Name, f.RadiusPixels)
	}
	if f.TargetHueDegrees < 0 || f.TargetHueDegrees >= 360 {
		return fmt.Errorf("focus %q: target_hue_degrees must be in [0,360), got %v", f.Name, f.TargetHueDegrees)
	}
	if f.CenterXFraction < 0 || f.CenterXFraction > 1 {
		return fmt.Errorf("focus %q: center_x_fraction must be in [0,1], got %v", f.Name, f.CenterXFraction)
	}
	if f.CenterYFraction < 0 || f.CenterYFraction > 1 {
		return fmt.Errorf("focus %q: center_y_fraction must be in [0,1], got %v", f.Name, f.CenterYFraction)
	}
	if f.SaturationSign != 1 && f.SaturationSign != -1 {
		return fmt.Errorf("focus %q: saturation_sign must be +1 or -1, got %v", f.Name, f.SaturationSign)
	}
	if f.LightnessSign != 1 && f.LightnessSign != -1 {
		return fmt.Errorf("focus %q: lightness_sign must be +1 or -1, got %v", f.Name, f.LightnessSign)
	}
	return nil
}

// CenterPixels resolves the fractional center to pixel coordinates for an
// image of the given dimensions. Fractions are truncated, so a fraction of
// 1.0 maps to width (one past the last column), matching the distance math
// rather than a sampling index.
func (f FocusPoint) CenterPixels(width, height int) (cx, cy float64) {
	return math.Trunc(f.CenterXFraction * float64(width)),
		math.Trunc(f.CenterYFraction * float64(height))
}

// Field is the per-pixel influence map of a single focus point.
//
// Weights are stored row-major with each value in [0, 1]. Fields are
// transient: computed once per pipeline invocation and discarded after
// composition.
type Field struct {
	Width  int
	Height int
	W      []float64 // length Width*Height, each in [0, 1]
}

// At returns the weight at (x, y). Bounds are not checked.
func (f *Field) At(x, y int) float64 {
	return f.W[y*f.Width+x]
}

// Compute produces the radial influence field of a focus point over a
// width x height pixel grid.
//
// For every pixel p the weight is
//
//	clamp(1 - dist(p, center)/radius, 0, 1)
//
// so the weight is 1 at the center, falls off linearly with Euclidean
// distance, and is 0 at and beyond the radius. Pixels are independent; rows
// are computed in parallel with disjoint writes.
//
// The focus must have been validated beforehand; Compute assumes a strictly
// positive radius.
func Compute(focus FocusPoint, width, height int) *Field {
	out := &Field{
		Width:  width,
		Height: height,
		W:      make([]float64, width*height),
	}

	cx, cy := focus.CenterPixels(width, height)

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			dy := float64(y) - cy
			for x := 0; x < width; x++ {
				dx := float64(x) - cx
				dist := math.Sqrt(dx*dx + dy*dy)
				w := 1 - dist/focus.RadiusPixels
				if w < 0 {
					w = 0
				} else if w > 1 {
					w = 1
				}
				out.W[y*width+x] = w
			}
		}
	})

	return out
}
