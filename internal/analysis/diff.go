package analysis

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/fieldtint/internal/imaging"
)

// DiffMap is a per-pixel scalar map of color differences between two images
// of the same dimensions, stored row-major.
type DiffMap struct {
	Width  int
	Height int
	V      []float64 // length Width*Height, Euclidean RGB distance per pixel
}

// DiffSummary reports aggregate statistics of a difference map.
type DiffSummary struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// ColorDifference computes the per-pixel Euclidean distance in normalized
// RGB space between two images.
//
// This is the plain geometric distance sqrt(dr^2 + dg^2 + db^2), not a
// perceptual metric; its purpose is to visualize where and how strongly a
// processing pass changed an image.
//
// Returns an error if the two images have different dimensions. Rows are
// processed in parallel with disjoint writes.
func ColorDifference(a, b *imaging.Image) (*DiffMap, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return nil, fmt.Errorf("image dimensions differ: %dx%d vs %dx%d",
			a.Width, a.Height, b.Width, b.Height)
	}

	out := &DiffMap{
		Width:  a.Width,
		Height: a.Height,
		V:      make([]float64, a.Width*a.Height),
	}

	parallel.Line(a.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < a.Width; x++ {
				ar, ag, ab := a.At(x, y)
				br, bg, bb := b.At(x, y)
				ca := colorful.Color{R: ar, G: ag, B: ab}
				cb := colorful.Color{R: br, G: bg, B: bb}
				out.V[y*a.Width+x] = ca.DistanceRgb(cb)
			}
		}
	})

	return out, nil
}

// Summary computes the min, max, and mean of the map.
func (m *DiffMap) Summary() DiffSummary {
	s := DiffSummary{Width: m.Width, Height: m.Height}
	if len(m.V) == 0 {
		return s
	}

	s.Min = m.V[0]
	s.Max = m.V[0]
	sum := 0.0
	for _, v := range m.V {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = sum / float64(len(m.V))
	return s
}

// ToGrayscale renders the map as a grayscale image, scaling values so the
// maximum difference maps to full white. An all-zero map (identical images)
// renders all black rather than dividing by zero.
func (m *DiffMap) ToGrayscale() *imaging.Image {
	max := 0.0
	for _, v := range m.V {
		if v > max {
			max = v
		}
	}

	out := imaging.NewImage(m.Width, m.Height)
	if max == 0 {
		return out
	}

	for i, v := range m.V {
		g := v / max
		out.Pix[3*i] = g
		out.Pix[3*i+1] = g
		out.Pix[3*i+2] = g
	}
	return out
}

// SaveGrayscale writes the scaled grayscale rendering of the map to path.
func (m *DiffMap) SaveGrayscale(path string) error {
	return m.ToGrayscale().Save(path)
}
