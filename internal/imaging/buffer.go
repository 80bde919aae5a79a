package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Image is a raster image normalized to floating-point RGB.
//
// Pixels are stored row-major as RGB triples with each component in [0, 1].
// The pixel at (x, y) occupies Pix[3*(y*Width+x)] through Pix[3*(y*Width+x)+2].
//
// An Image is immutable by convention once produced: pipeline stages read an
// input buffer and write a freshly allocated output buffer, never in place.
type Image struct {
	Width  int
	Height int
	Pix    []float64 // length 3*Width*Height, components in [0, 1]
}

// NewImage allocates a zeroed (black) image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]float64, 3*width*height),
	}
}

// At returns the RGB components at (x, y). Bounds are not checked.
func (m *Image) At(x, y int) (r, g, b float64) {
	i := 3 * (y*m.Width + x)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Set writes the RGB components at (x, y). Bounds are not checked.
func (m *Image) Set(x, y int, r, g, b float64) {
	i := 3 * (y*m.Width + x)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = r, g, b
}

// Load decodes the raster file at path into a normalized Image.
//
// Supported formats are those registered by the imaging library (PNG, JPEG,
// GIF, TIFF, BMP). The decoded image is first cloned to NRGBA, then each
// 8-bit component is divided by 255. Alpha is discarded; the engine operates
// on opaque RGB only.
//
// Returns an error if the file cannot be opened or is not a decodable raster
// image. No partial result is returned on error.
func Load(path string) (*Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %q: %w", path, err)
	}
	return FromImage(src), nil
}

// FromImage converts any image.Image into a normalized Image buffer.
//
// Rows are converted in parallel; each row writes a disjoint slice of the
// output buffer.
func FromImage(src image.Image) *Image {
	nrgba := imaging.Clone(src)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	out := NewImage(w, h)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				s := nrgba.PixOffset(x, y)
				d := 3 * (y*w + x)
				out.Pix[d] = float64(nrgba.Pix[s]) / 255
				out.Pix[d+1] = float64(nrgba.Pix[s+1]) / 255
				out.Pix[d+2] = float64(nrgba.Pix[s+2]) / 255
			}
		}
	})

	return out
}

// ToNRGBA quantizes the normalized buffer to 8-bit NRGBA.
//
// Each component is scaled by 255, rounded to nearest, and clamped into
// [0, 255]. Alpha is fully opaque. Quantization is the only lossy step of the
// pipeline and is deterministic, so repeated runs produce byte-identical
// output.
func (m *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))

	parallel.Line(m.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < m.Width; x++ {
				s := 3 * (y*m.Width + x)
				d := dst.PixOffset(x, y)
				dst.Pix[d] = quantize(m.Pix[s])
				dst.Pix[d+1] = quantize(m.Pix[s+1])
				dst.Pix[d+2] = quantize(m.Pix[s+2])
				dst.Pix[d+3] = 0xFF
			}
		}
	})

	return dst
}

// Save quantizes the buffer and encodes it to path.
//
// The output format is chosen from the file extension by the imaging library
// (".png", ".jpg", ".gif", ".tif", ".bmp"). Encoding writes the file in one
// call; on error the destination may not exist but is never left with a
// partially adjusted result from this buffer.
func (m *Image) Save(path string) error {
	if err := imaging.Save(m.ToNRGBA(), path); err != nil {
		return fmt.Errorf("failed to save image %q: %w", path, err)
	}
	return nil
}

// quantize maps a normalized component to an 8-bit value, rounding to
// nearest and clamping out-of-range inputs.
func quantize(v float64) uint8 {
	q := math.Round(v * 255)
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return uint8(q)
}

// HSLBuffer holds the HSL representation of every pixel of an Image, in the
// same row-major order. It is a transient structure owned by a single
// pipeline invocation.
type HSLBuffer struct {
	Width  int
	Height int
	Pix    []HSL // length Width*Height
}

// ToHSL converts every pixel to HSL.
//
// Rows are processed in parallel; pixels are independent so the only shared
// state is the disjointly written output slice.
func (m *Image) ToHSL() *HSLBuffer {
	out := &HSLBuffer{
		Width:  m.Width,
		Height: m.Height,
		Pix:    make([]HSL, m.Width*m.Height),
	}

	parallel.Line(m.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < m.Width; x++ {
				r, g, b := m.At(x, y)
				out.Pix[y*m.Width+x] = RGBToHSL(r, g, b)
			}
		}
	})

	return out
}

// ToRGB converts the HSL buffer back to a normalized RGB Image.
func (h *HSLBuffer) ToRGB() *Image {
	out := NewImage(h.Width, h.Height)

	parallel.Line(h.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < h.Width; x++ {
				r, g, b := HSLToRGB(h.Pix[y*h.Width+x])
				out.Set(x, y, r, g, b)
			}
		}
	})

	return out
}

// At returns the HSL pixel at (x, y). Bounds are not checked.
func (h *HSLBuffer) At(x, y int) HSL {
	return h.Pix[y*h.Width+x]
}
