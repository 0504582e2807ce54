package config

import (
	"fmt"

	"github.com/vovakirdan/noisefetch/internal/noise"
	"github.com/vovakirdan/noisefetch/internal/render"
)

// Compositor builds the frame compositor described by the configuration:
// noise field, gradient table, overlay content, gap and HUD text.
func (c Config) Compositor() (*render.Compositor, error) {
	ramp, err := c.ResolveRamp()
	if err != nil {
		return nil, err
	}
	lut := noise.NewGradientLUT(ramp)
	if c.Render.Invert {
		lut = lut.Inverted()
	}
	return render.NewCompositor(
		noise.NewField(c.NoiseParams()),
		lut,
		render.NewContent(c.Overlay.Logo, c.Overlay.Info),
		render.WithGap(c.Render.Gap),
		render.WithHUD(c.HUDText()),
	), nil
}

// HUDText returns the bottom row text: the configured HUD, or the frame
// rate and noise parameters when HUDStats is set.
func (c Config) HUDText() string {
	if !c.Render.HUDStats {
		return c.Render.HUD
	}
	return fmt.Sprintf(" noisefetch  fps=%d  scale=%.2f  speed=%.2f  (q to quit) ",
		c.Render.FPS, c.Noise.Scale, c.Noise.Speed)
}
