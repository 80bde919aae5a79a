package field

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
)

// Composite is the merge of all influence fields of a run.
//
// For every pixel it holds the total weight, the clipped sum of all
// individual field weights, and the index (registration order) of the
// dominant focus: the one whose individual weight is strictly greatest at
// that pixel. On exact ties the first-registered focus wins; the comparison
// uses strict greater-than, so later foci only take over when they strictly
// exceed all earlier ones.
type Composite struct {
	Width  int
	Height int

	// Total is the per-pixel total weight, clip(sum of weights, 0, 1).
	Total []float64

	// Dominant is the per-pixel index of the dominant focus, in the order
	// the fields were passed to Compose.
	Dominant []int
}

// TotalAt returns the total weight at (x, y). Bounds are not checked.
func (c *Composite) TotalAt(x, y int) float64 {
	return c.Total[y*c.Width+x]
}

// DominantAt returns the dominant focus index at (x, y). Bounds are not
// checked.
func (c *Composite) DominantAt(x, y int) int {
	return c.Dominant[y*c.Width+x]
}

// Compose merges one influence field per focus into a single Composite.
//
// Parameters:
//   - fields: one Field per configured focus, in registration order. At
//     least one field is required and all fields must share the same
//     dimensions.
//
// Returns:
//   - *Composite: per-pixel total weight in [0, 1] and dominant focus index.
//   - error: Non-nil if no fields are given or dimensions disagree.
//
// Pixels are independent; rows are processed in parallel with disjoint
// writes to the output slices.
func Compose(fields []*Field) (*Composite, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("at least one influence field is required")
	}

	w, h := fields[0].Width, fields[0].Height
	for i, f := range fields {
		if f.Width != w || f.Height != h {
			return nil, fmt.Errorf("field %d is %dx%d, want %dx%d", i, f.Width, f.Height, w, h)
		}
	}

	out := &Composite{
		Width:    w,
		Height:   h,
		Total:    make([]float64, w*h),
		Dominant: make([]int, w*h),
	}

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x

				sum := 0.0
				best := 0
				bestW := fields[0].W[i]
				for fi, f := range fields {
					wt := f.W[i]
					sum += wt
					if wt > bestW {
						best = fi
						bestW = wt
					}
				}

				if sum > 1 {
					sum = 1
				} else if sum < 0 {
					sum = 0
				}
				out.Total[i] = sum
				out.Dominant[i] = best
			}
		}
	})

	return out, nil
}
