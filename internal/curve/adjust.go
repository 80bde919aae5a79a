package curve

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/ironsheep/fieldtint/internal/field"
	"github.com/ironsheep/fieldtint/internal/imaging"
)

// Adjust applies the configured hue/saturation/lightness curves to every
// pixel of an HSL buffer, weighted by the composite influence field.
//
// For a pixel with original (h, s, l), total weight w, and dominant focus f:
//
//	h' = (h + (f.target - h) * w * maxHueShift/360) mod 360
//	s' = clip(s + w * maxSaturationAdjust * f.saturationSign, 0, 1)
//	l' = clip(l + w * maxLightnessAdjust * f.lightnessSign, 0, 1)
//
// The hue moves a fraction of the way toward the dominant focus's target
// hue; it is never a hard replacement. Outside every focus's radius w is 0
// and the pixel passes through unchanged.
//
// Adjust is a pure function of its inputs: it writes a freshly allocated
// buffer, processes rows in parallel with disjoint writes, and leaves the
// input untouched. The output satisfies the HSL invariants (hue wrapped into
// [0, 360), saturation and lightness clamped into [0, 1]).
//
// Returns an error if the buffer and composite dimensions disagree or if a
// dominant index falls outside the configured foci; both indicate the caller
// paired results from different runs.
func Adjust(src *imaging.HSLBuffer, comp *field.Composite, cfg Config) (*imaging.HSLBuffer, error) {
	if src.Width != comp.Width || src.Height != comp.Height {
		return nil, fmt.Errorf("hsl buffer is %dx%d but composite field is %dx%d",
			src.Width, src.Height, comp.Width, comp.Height)
	}
	for _, d := range comp.Dominant {
		if d < 0 || d >= len(cfg.Foci) {
			return nil, fmt.Errorf("dominant focus index %d out of range for %d foci", d, len(cfg.Foci))
		}
	}

	out := &imaging.HSLBuffer{
		Width:  src.Width,
		Height: src.Height,
		Pix:    make([]imaging.HSL, len(src.Pix)),
	}

	hueScale := cfg.MaxHueShiftDegrees / 360

	parallel.Line(src.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < src.Width; x++ {
				i := y*src.Width + x
				p := src.Pix[i]
				w := comp.Total[i]
				f := cfg.Foci[comp.Dominant[i]]

				out.Pix[i] = AdjustPixel(p, w, f, hueScale, cfg.MaxSaturationAdjust, cfg.MaxLightnessAdjust)
			}
		}
	})

	return out, nil
}

// AdjustPixel applies the curve adjustment to a single pixel with the given
// total weight and dominant focus. hueScale is the precomputed
// MaxHueShiftDegrees/360.
func AdjustPixel(p imaging.HSL, w float64, f field.FocusPoint, hueScale, maxSat, maxLight float64) imaging.HSL {
	h := p.H + (f.TargetHueDegrees-p.H)*w*hueScale
	s := p.S + w*maxSat*f.SaturationSign
	l := p.L + w*maxLight*f.LightnessSign
	return imaging.HSL{H: h, S: s, L: l}.Canon()
}
