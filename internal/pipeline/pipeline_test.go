package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/fieldtint/internal/curve"
	"github.com/ironsheep/fieldtint/internal/field"
	"github.com/ironsheep/fieldtint/internal/imaging"
)

func testConfig() curve.Config {
	return curve.Config{
		Foci: []field.FocusPoint{
			{
				Name: "red", CenterXFraction: 0, CenterYFraction: 0,
				RadiusPixels: 4, TargetHueDegrees: 0,
				SaturationSign: 1, LightnessSign: 1,
			},
			{
				Name: "blue", CenterXFraction: 0.75, CenterYFraction: 0.75,
				RadiusPixels: 4, TargetHueDegrees: 240,
				SaturationSign: -1, LightnessSign: -1,
			},
		},
		MaxHueShiftDegrees:  30,
		MaxSaturationAdjust: 0.2,
		MaxLightnessAdjust:  0.1,
	}
}

func grayImage(width, height int, gray float64) *imaging.Image {
	img := imaging.NewImage(width, height)
	for i := 0; i < width*height; i++ {
		img.Pix[3*i], img.Pix[3*i+1], img.Pix[3*i+2] = gray, gray, gray
	}
	return img
}

func TestApply_AdjustsTowardFoci(t *testing.T) {
	img := grayImage(4, 4, 0.5)

	out, err := Apply(img, testConfig())
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// The red center gains saturation and lightness: with h=0 and s=0.2,
	// l=0.6 the pixel turns reddish (r > g = b).
	r, g, b := out.At(0, 0)
	if !(r > g && g == b) {
		t.Errorf("pixel (0,0) = (%v,%v,%v), want r > g == b", r, g, b)
	}

	// The blue center keeps s=0 (clamped) but darkens to l=0.4.
	r, g, b = out.At(3, 3)
	if r != 0.4 || g != 0.4 || b != 0.4 {
		t.Errorf("pixel (3,3) = (%v,%v,%v), want uniform 0.4", r, g, b)
	}
}

func TestApply_Deterministic(t *testing.T) {
	img := grayImage(16, 16, 0.5)
	cfg := testConfig()

	a, err := Apply(img, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Apply(img, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a.ToNRGBA().Pix, b.ToNRGBA().Pix) {
		t.Error("two runs with identical input and configuration differ")
	}
}

func TestApply_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Foci[0].RadiusPixels = -1

	if _, err := Apply(grayImage(4, 4, 0.5), cfg); err == nil {
		t.Error("expected configuration error")
	}
}

func TestRun_FileToFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")

	if err := grayImage(8, 8, 0.5).Save(inPath); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	result, err := Run(inPath, outPath, testConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Width != 8 || result.Height != 8 || result.Foci != 2 {
		t.Errorf("result = %+v, want 8x8 with 2 foci", result)
	}

	out, err := imaging.Load(outPath)
	if err != nil {
		t.Fatalf("output is not a decodable image: %v", err)
	}
	if out.Width != 8 || out.Height != 8 {
		t.Errorf("output dimensions: got %dx%d, want 8x8", out.Width, out.Height)
	}
}

func TestRun_ByteIdenticalOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.png")
	out1 := filepath.Join(dir, "out1.png")
	out2 := filepath.Join(dir, "out2.png")

	if err := grayImage(8, 8, 0.5).Save(inPath); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	if _, err := Run(inPath, out1, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(inPath, out2, cfg); err != nil {
		t.Fatal(err)
	}

	b1, err := os.ReadFile(out1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(out2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b1, b2) {
		t.Error("two runs produced different output files")
	}
}

func TestRun_NoOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.png")

	t.Run("missing input", func(t *testing.T) {
		if _, err := Run(filepath.Join(dir, "missing.png"), outPath, testConfig()); err == nil {
			t.Fatal("expected error for missing input")
		}
		if _, err := os.Stat(outPath); !os.IsNotExist(err) {
			t.Error("output file written despite failed run")
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		inPath := filepath.Join(dir, "in.png")
		if err := grayImage(4, 4, 0.5).Save(inPath); err != nil {
			t.Fatal(err)
		}

		cfg := testConfig()
		cfg.MaxSaturationAdjust = 5

		if _, err := Run(inPath, outPath, cfg); err == nil {
			t.Fatal("expected configuration error")
		}
		if _, err := os.Stat(outPath); !os.IsNotExist(err) {
			t.Error("output file written despite invalid configuration")
		}
	})
}
