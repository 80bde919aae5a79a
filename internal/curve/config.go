package curve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/fieldtint/internal/field"
)

// Config holds one run's complete adjustment configuration: the focus points
// plus the global adjustment limits. It is supplied once per run and treated
// as immutable afterwards.
type Config struct {
	// Foci are the configured focus points, in registration order. The
	// adjustment semantics expect two or more, but any N >= 1 is accepted.
	Foci []field.FocusPoint `json:"foci"`

	// MaxHueShiftDegrees scales the hue pull toward the dominant focus's
	// target hue. A pixel at full influence moves
	// (target - h) * MaxHueShiftDegrees/360 of the way there.
	MaxHueShiftDegrees float64 `json:"max_hue_shift_degrees"`

	// MaxSaturationAdjust is the saturation delta at full influence, in
	// [-1, 1]. Applied with the dominant focus's SaturationSign.
	MaxSaturationAdjust float64 `json:"max_saturation_adjust"`

	// MaxLightnessAdjust is the lightness delta at full influence, in
	// [-1, 1]. Applied with the dominant focus's LightnessSign.
	MaxLightnessAdjust float64 `json:"max_lightness_adjust"`

	// SecondaryMixFactor is accepted and validated into [0, 1] but has no
	// effect on the computed output. It is retained for configuration
	// compatibility; see the package documentation.
	SecondaryMixFactor float64 `json:"secondary_mix_factor"`
}

// DefaultConfig returns the two-focus configuration the engine was built
// around: a warm focus near the bottom-left pulling toward red and a cool
// focus near the top-right pulling toward blue, with moderate limits.
func DefaultConfig() Config {
	return Config{
		Foci: []field.FocusPoint{
			{
				Name:             "red",
				CenterXFraction:  0.1,
				CenterYFraction:  0.9,
				RadiusPixels:     200,
				TargetHueDegrees: 0,
				SaturationSign:   1,
				LightnessSign:    1,
			},
			{
				Name:             "blue",
				CenterXFraction:  0.9,
				CenterYFraction:  0.1,
				RadiusPixels:     200,
				TargetHueDegrees: 240,
				SaturationSign:   -1,
				LightnessSign:    -1,
			},
		},
		MaxHueShiftDegrees:  30,
		MaxSaturationAdjust: 0.2,
		MaxLightnessAdjust:  0.1,
		SecondaryMixFactor:  0.5,
	}
}

// ApplyDefaults fills in unset per-focus fields.
//
// A focus with both signs left at zero gets the classic direction scheme:
// +1/+1 for the first-registered focus, -1/-1 for every other. With exactly
// two foci this reproduces the original two-focus behavior; configurations
// that need anything else set the signs explicitly. An unnamed focus is
// given a positional name.
func (c *Config) ApplyDefaults() {
	for i := range c.Foci {
		f := &c.Foci[i]
		if f.SaturationSign == 0 && f.LightnessSign == 0 {
			if i == 0 {
				f.SaturationSign, f.LightnessSign = 1, 1
			} else {
				f.SaturationSign, f.LightnessSign = -1, -1
			}
		}
		if f.Name == "" {
			f.Name = fmt.Sprintf("focus-%d", i)
		}
	}
}

// Validate checks the whole configuration before any pixel processing
// begins. It returns the first problem found, naming the offending
// parameter.
func (c *Config) Validate() error {
	if len(c.Foci) == 0 {
		return fmt.Errorf("at least one focus point is required")
	}
	for _, f := range c.Foci {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	if c.MaxHueShiftDegrees < 0 || c.MaxHueShiftDegrees > 360 {
		return fmt.Errorf("max_hue_shift_degrees must be in [0,360], got %v", c.MaxHueShiftDegrees)
	}
	if c.MaxSaturationAdjust < -1 || c.MaxSaturationAdjust > 1 {
		return fmt.Errorf("max_saturation_adjust must be in [-1,1], got %v", c.MaxSaturationAdjust)
	}
	if c.MaxLightnessAdjust < -1 || c.MaxLightnessAdjust > 1 {
		return fmt.Errorf("max_lightness_adjust must be in [-1,1], got %v", c.MaxLightnessAdjust)
	}
	if c.SecondaryMixFactor < 0 || c.SecondaryMixFactor > 1 {
		return fmt.Errorf("secondary_mix_factor must be in [0,1], got %v", c.SecondaryMixFactor)
	}
	return nil
}

// LoadConfig reads a JSON configuration file, applies defaults, and
// validates it.
//
// Unknown fields are rejected so a typo in an option name fails loudly
// instead of silently using a default.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config %q: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, nil
}
