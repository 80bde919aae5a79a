package curve

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/fieldtint/internal/field"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if len(cfg.Foci) != 2 {
		t.Fatalf("default foci: got %d, want 2", len(cfg.Foci))
	}
	if cfg.Foci[0].SaturationSign != 1 || cfg.Foci[1].SaturationSign != -1 {
		t.Error("default signs must be +1 for the first focus and -1 for the second")
	}
}

func TestApplyDefaults_SignScheme(t *testing.T) {
	cfg := Config{
		Foci: []field.FocusPoint{
			{RadiusPixels: 10},
			{RadiusPixels: 10},
			{RadiusPixels: 10, SaturationSign: 1, LightnessSign: -1}, // explicit, untouched
		},
	}
	cfg.ApplyDefaults()

	if cfg.Foci[0].SaturationSign != 1 || cfg.Foci[0].LightnessSign != 1 {
		t.Errorf("first focus signs = (%v,%v), want (+1,+1)", cfg.Foci[0].SaturationSign, cfg.Foci[0].LightnessSign)
	}
	if cfg.Foci[1].SaturationSign != -1 || cfg.Foci[1].LightnessSign != -1 {
		t.Errorf("second focus signs = (%v,%v), want (-1,-1)", cfg.Foci[1].SaturationSign, cfg.Foci[1].LightnessSign)
	}
	if cfg.Foci[2].SaturationSign != 1 || cfg.Foci[2].LightnessSign != -1 {
		t.Errorf("explicit signs were overwritten: (%v,%v)", cfg.Foci[2].SaturationSign, cfg.Foci[2].LightnessSign)
	}

	if cfg.Foci[0].Name != "focus-0" || cfg.Foci[1].Name != "focus-1" {
		t.Errorf("positional names: got %q, %q", cfg.Foci[0].Name, cfg.Foci[1].Name)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"no foci", func(c *Config) { c.Foci = nil }, "focus point"},
		{"bad focus radius", func(c *Config) { c.Foci[0].RadiusPixels = 0 }, "radius_pixels"},
		{"hue shift too large", func(c *Config) { c.MaxHueShiftDegrees = 361 }, "max_hue_shift_degrees"},
		{"saturation out of range", func(c *Config) { c.MaxSaturationAdjust = 1.5 }, "max_saturation_adjust"},
		{"lightness out of range", func(c *Config) { c.MaxLightnessAdjust = -2 }, "max_lightness_adjust"},
		{"mix factor out of range", func(c *Config) { c.SecondaryMixFactor = 2 }, "secondary_mix_factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	data := `{
		"foci": [
			{"name": "warm", "center_x_fraction": 0.1, "center_y_fraction": 0.9,
			 "radius_pixels": 150, "target_hue_degrees": 20},
			{"name": "cool", "center_x_fraction": 0.9, "center_y_fraction": 0.1,
			 "radius_pixels": 150, "target_hue_degrees": 220}
		],
		"max_hue_shift_degrees": 45,
		"max_saturation_adjust": 0.15,
		"max_lightness_adjust": 0.05,
		"secondary_mix_factor": 0.5
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Foci) != 2 || cfg.Foci[0].Name != "warm" {
		t.Errorf("unexpected foci: %+v", cfg.Foci)
	}
	// Defaulting ran: unset signs got the classic scheme.
	if cfg.Foci[0].SaturationSign != 1 || cfg.Foci[1].SaturationSign != -1 {
		t.Errorf("sign defaults not applied: %+v", cfg.Foci)
	}
	if cfg.MaxHueShiftDegrees != 45 {
		t.Errorf("MaxHueShiftDegrees = %v, want 45", cfg.MaxHueShiftDegrees)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(dir, "typo.json")
		data := `{"foci": [{"radius_pixels": 10}], "max_hue_shift_degres": 30}`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("invalid radius", func(t *testing.T) {
		path := filepath.Join(dir, "radius.json")
		data := `{"foci": [{"name": "bad", "radius_pixels": -1}]}`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected validation error")
		}
	})
}
