// Package config provides YAML-based configuration loading for noisefetch:
// noise parameters, the glyph ramp, frame pacing, the overlay content and
// logging.
package config

import (
	"time"

	"github.com/vovakirdan/noisefetch/internal/core"
	"github.com/vovakirdan/noisefetch/internal/noise"
)

// Config is the whole configuration file.
type Config struct {
	Noise   NoiseConfig   `yaml:"noise"`
	Render  RenderConfig  `yaml:"render"`
	Overlay OverlayConfig `yaml:"overlay"`
	Log     LogConfig     `yaml:"log"`

	// Source is the file the configuration came from, or SourceEmbedded /
	// SourceBuiltin.
	Source string `yaml:"-"`
}

// NoiseConfig mirrors noise.Params.
type NoiseConfig struct {
	Scale      float64 `yaml:"scale"`      // Spatial scale, per column
	Speed      float64 `yaml:"speed"`      // Time scale, per second
	Octaves    int     `yaml:"octaves"`    // fBm octaves (>= 1)
	Lacunarity float64 `yaml:"lacunarity"` // Frequency multiplier per octave
	Gain       float64 `yaml:"gain"`       // Amplitude multiplier per octave
}

// RenderConfig defines the animation surface.
type RenderConfig struct {
	Ramp         string `yaml:"ramp"`   // Literal glyph ramp, dark to bright
	Preset       string `yaml:"preset"` // Named ramp; wins over Ramp when set
	FPS          int    `yaml:"fps"`
	ResizePollMS int    `yaml:"resize_poll_ms"`
	HUD          string `yaml:"hud"`
	HUDStats     bool   `yaml:"hud_stats"` // Show fps, scale and speed instead of HUD
	Invert       bool   `yaml:"invert"`    // Map low intensities to the bright end
	Gap          int    `yaml:"gap"`       // Columns between logo and info
	AltScreen    bool   `yaml:"alt_screen"`
}

// OverlayConfig holds the two input sequences composited over the field.
type OverlayConfig struct {
	Logo []string `yaml:"logo"`
	Info []string `yaml:"info"`
}

// LogConfig selects where diagnostics go. The animation owns the terminal,
// so logs are discarded unless File is set.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`
}

// NoiseParams converts the noise section.
func (c Config) NoiseParams() noise.Params {
	return noise.Params{
		Scale:      c.Noise.Scale,
		Speed:      c.Noise.Speed,
		Octaves:    c.Noise.Octaves,
		Lacunarity: c.Noise.Lacunarity,
		Gain:       c.Noise.Gain,
	}
}

// Runtime converts the render section into the loop's runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.FrameRate = c.Render.FPS
	rc.ResizePoll = time.Duration(c.Render.ResizePollMS) * time.Millisecond
	rc.AltScreen = c.Render.AltScreen
	return rc
}

// Validate normalises out-of-range values in place.
func (c *Config) Validate() {
	def := Default()

	if c.Render.FPS <= 0 {
		c.Render.FPS = def.Render.FPS
	}
	if c.Render.ResizePollMS <= 0 {
		c.Render.ResizePollMS = def.Render.ResizePollMS
	}
	if c.Render.Gap < 0 {
		c.Render.Gap = def.Render.Gap
	}
	if c.Noise.Octaves < 1 {
		c.Noise.Octaves = 1
	}
	if c.Noise.Scale <= 0 {
		c.Noise.Scale = def.Noise.Scale
	}
	if c.Noise.Lacunarity <= 0 {
		c.Noise.Lacunarity = def.Noise.Lacunarity
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
