// Package curve applies hue/saturation/lightness curve adjustments driven by
// a composite influence field.
//
// Every pixel moves a fraction of the way toward the dominant focus's target
// hue, scaled by the pixel's total influence weight and the global maximum
// hue shift, while saturation and lightness shift by the dominant focus's
// signed deltas. Pixels outside every focus's influence pass through
// unchanged.
//
// The package also owns the run configuration: focus points plus the global
// adjustment limits, with JSON loading, defaulting, and up-front validation.
// One configuration field, secondary_mix_factor, is accepted and validated
// but currently has no effect on the output; it is kept so existing
// configuration files remain valid rather than being silently dropped.
package curve
