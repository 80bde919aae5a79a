package analysis

import (
	"fmt"
	"math"

	"github.com/ironsheep/fieldtint/internal/imaging"
)

// FeaturesPerPixel is the number of values extracted from each pixel of each
// frame: the R, G, and B components plus the RGB vector magnitude.
const FeaturesPerPixel = 4

// stdEpsilon replaces a zero standard deviation so z-scores of values that
// are constant over time come out as 0 instead of dividing by zero. The same
// epsilon pads the min-max denominator during normalization.
const stdEpsilon = 1e-9

// TimeSeriesStats holds per-pixel statistics over a frame sequence.
//
// Mean and Std are indexed by (y*Width+x)*FeaturesPerPixel + c. Z and NormZ
// additionally vary by frame, indexed by
// ((t*Height+y)*Width+x)*FeaturesPerPixel + c.
type TimeSeriesStats struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Frames int `json:"frames"`

	// Mean is the per-pixel per-feature mean across time.
	Mean []float64 `json:"mean"`

	// Std is the per-pixel per-feature population standard deviation across
	// time.
	Std []float64 `json:"std"`

	// Z holds per-frame z-scores: (value - mean) / std, with a zero std
	// replaced by a small epsilon.
	Z []float64 `json:"z"`

	// NormZ holds Z min-max rescaled into [0, 1] per feature, where the min
	// and max are taken across all pixels and frames of that feature.
	NormZ []float64 `json:"norm_z"`
}

// ExtractFeatures produces the per-pixel feature vector of one frame:
// R, G, B, and the vector magnitude sqrt(r^2 + g^2 + b^2), row-major with
// FeaturesPerPixel values per pixel.
func ExtractFeatures(img *imaging.Image) []float64 {
	out := make([]float64, img.Width*img.Height*FeaturesPerPixel)
	for i := 0; i < img.Width*img.Height; i++ {
		r := img.Pix[3*i]
		g := img.Pix[3*i+1]
		b := img.Pix[3*i+2]
		out[4*i] = r
		out[4*i+1] = g
		out[4*i+2] = b
		out[4*i+3] = math.Sqrt(r*r + g*g + b*b)
	}
	return out
}

// TimeSeries computes per-pixel statistics over time for a frame sequence.
//
// For each pixel and each of the FeaturesPerPixel features, the mean and
// population standard deviation are taken across the N frames; each frame's
// value is then converted to a z-score, and finally the z-scores of each
// feature are min-max normalized into [0, 1] across all pixels and frames.
//
// Returns an error if no frames are given or if the frames do not all share
// the same dimensions.
func TimeSeries(frames []*imaging.Image) (*TimeSeriesStats, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("at least one frame is required")
	}

	w, h := frames[0].Width, frames[0].Height
	for i, f := range frames {
		if f.Width != w || f.Height != h {
			return nil, fmt.Errorf("frame %d is %dx%d, want %dx%d", i, f.Width, f.Height, w, h)
		}
	}

	n := len(frames)
	pixels := w * h

	features := make([][]float64, n)
	for t, f := range frames {
		features[t] = ExtractFeatures(f)
	}

	stats := &TimeSeriesStats{
		Width:  w,
		Height: h,
		Frames: n,
		Mean:   make([]float64, pixels*FeaturesPerPixel),
		Std:    make([]float64, pixels*FeaturesPerPixel),
		Z:      make([]float64, n*pixels*FeaturesPerPixel),
		NormZ:  make([]float64, n*pixels*FeaturesPerPixel),
	}

	// Mean and population standard deviation across time.
	for i := 0; i < pixels*FeaturesPerPixel; i++ {
		sum := 0.0
		for t := 0; t < n; t++ {
			sum += features[t][i]
		}
		mean := sum / float64(n)

		varSum := 0.0
		for t := 0; t < n; t++ {
			d := features[t][i] - mean
			varSum += d * d
		}

		stats.Mean[i] = mean
		stats.Std[i] = math.Sqrt(varSum / float64(n))
	}

	// Z-scores, guarding constant-over-time values.
	for t := 0; t < n; t++ {
		for i := 0; i < pixels*FeaturesPerPixel; i++ {
			std := stats.Std[i]
			if std == 0 {
				std = stdEpsilon
			}
			stats.Z[t*pixels*FeaturesPerPixel+i] = (features[t][i] - stats.Mean[i]) / std
		}
	}

	// Min-max normalize z-scores per feature across all pixels and frames.
	for c := 0; c < FeaturesPerPixel; c++ {
		min := math.Inf(1)
		max := math.Inf(-1)
		for j := c; j < len(stats.Z); j += FeaturesPerPixel {
			if stats.Z[j] < min {
				min = stats.Z[j]
			}
			if stats.Z[j] > max {
				max = stats.Z[j]
			}
		}
		denom := max - min + stdEpsilon
		for j := c; j < len(stats.Z); j += FeaturesPerPixel {
			stats.NormZ[j] = (stats.Z[j] - min) / denom
		}
	}

	return stats, nil
}

// MeanAt returns the mean of feature c at pixel (x, y). Bounds are not
// checked.
func (s *TimeSeriesStats) MeanAt(x, y, c int) float64 {
	return s.Mean[(y*s.Width+x)*FeaturesPerPixel+c]
}

// StdAt returns the standard deviation of feature c at pixel (x, y). Bounds
// are not checked.
func (s *TimeSeriesStats) StdAt(x, y, c int) float64 {
	return s.Std[(y*s.Width+x)*FeaturesPerPixel+c]
}

// ZAt returns the z-score of feature c at pixel (x, y) in frame t. Bounds
// are not checked.
func (s *TimeSeriesStats) ZAt(t, x, y, c int) float64 {
	return s.Z[((t*s.Height+y)*s.Width+x)*FeaturesPerPixel+c]
}
