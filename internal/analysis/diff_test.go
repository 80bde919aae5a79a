package analysis

import (
	"math"
	"testing"

	"github.com/ironsheep/fieldtint/internal/imaging"
)

func solidImage(width, height int, r, g, b float64) *imaging.Image {
	img := imaging.NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, r, g, b)
		}
	}
	return img
}

func TestColorDifference_IdenticalImages(t *testing.T) {
	a := solidImage(4, 4, 0.2, 0.4, 0.6)

	m, err := ColorDifference(a, a)
	if err != nil {
		t.Fatalf("ColorDifference failed: %v", err)
	}

	for i, v := range m.V {
		if v != 0 {
			t.Fatalf("V[%d] = %v, want 0 for identical images", i, v)
		}
	}

	s := m.Summary()
	if s.Min != 0 || s.Max != 0 || s.Mean != 0 {
		t.Errorf("summary = %+v, want all zero", s)
	}
}

func TestColorDifference_KnownDistance(t *testing.T) {
	a := solidImage(2, 2, 0, 0, 0)
	b := solidImage(2, 2, 1, 0, 0)

	m, err := ColorDifference(a, b)
	if err != nil {
		t.Fatalf("ColorDifference failed: %v", err)
	}

	// Black to pure red is distance 1 in RGB space.
	for i, v := range m.V {
		if math.Abs(v-1) > 1e-12 {
			t.Fatalf("V[%d] = %v, want 1", i, v)
		}
	}

	// Black to white is sqrt(3).
	c := solidImage(2, 2, 1, 1, 1)
	m, err = ColorDifference(a, c)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.V[0]-math.Sqrt(3)) > 1e-12 {
		t.Errorf("V[0] = %v, want sqrt(3)", m.V[0])
	}
}

func TestColorDifference_DimensionMismatch(t *testing.T) {
	a := solidImage(4, 4, 0, 0, 0)
	b := solidImage(4, 5, 0, 0, 0)

	if _, err := ColorDifference(a, b); err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}

func TestDiffMapSummary(t *testing.T) {
	m := &DiffMap{Width: 2, Height: 2, V: []float64{0, 0.5, 1, 0.5}}

	s := m.Summary()
	if s.Min != 0 || s.Max != 1 || s.Mean != 0.5 {
		t.Errorf("summary = %+v, want min=0 max=1 mean=0.5", s)
	}
}

func TestToGrayscale_ScalesToMax(t *testing.T) {
	m := &DiffMap{Width: 2, Height: 1, V: []float64{0.25, 0.5}}

	img := m.ToGrayscale()

	r, g, b := img.At(0, 0)
	if r != 0.5 || g != 0.5 || b != 0.5 {
		t.Errorf("At(0,0) = (%v,%v,%v), want 0.5 gray", r, g, b)
	}
	r, _, _ = img.At(1, 0)
	if r != 1 {
		t.Errorf("At(1,0) r = %v, want 1 (the maximum difference)", r)
	}
}

func TestToGrayscale_AllZero(t *testing.T) {
	m := &DiffMap{Width: 2, Height: 1, V: []float64{0, 0}}

	img := m.ToGrayscale()
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %v, want 0 (all-black map for identical images)", i, v)
		}
	}
}
