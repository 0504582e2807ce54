package config

import (
	"fmt"

	"github.com/vovakirdan/noisefetch/internal/noise"
	"github.com/vovakirdan/noisefetch/internal/registry"
)

// ResolveRamp returns the glyph ramp to build the gradient from. A named
// preset wins over the literal ramp; an empty result falls back to
// noise.DefaultRamp.
func (c Config) ResolveRamp() (string, error) {
	if c.Render.Preset != "" {
		r, err := registry.Lookup(c.Render.Preset)
		if err != nil {
			return "", fmt.Errorf("config: ramp preset: %w", err)
		}
		return r.Glyphs, nil
	}
	if c.Render.Ramp == "" {
		return noise.DefaultRamp, nil
	}
	return c.Render.Ramp, nil
}

// ApplyPreset selects a named ramp, checking that it exists.
func ApplyPreset(cfg *Config, preset string) error {
	if preset == "" {
		return nil
	}
	if !registry.Exists(preset) {
		return fmt.Errorf("config: unknown ramp preset %q", preset)
	}
	cfg.Render.Preset = preset
	return nil
}
