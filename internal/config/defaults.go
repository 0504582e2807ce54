package config

import (
	_ "embed"

	"github.com/vovakirdan/noisefetch/internal/noise"
	"github.com/vovakirdan/noisefetch/internal/render"
)

//go:embed defaults/noisefetch.yaml
var defaultYAML []byte

// DefaultLogo is shown when no logo is configured.
var DefaultLogo = []string{
	"  _  _ ",
	" | \\| |",
	" | .` |",
	" |_|\\_|",
}

// Default returns the hardcoded configuration, used when even the embedded
// YAML cannot be parsed.
func Default() Config {
	p := noise.DefaultParams()
	return Config{
		Noise: NoiseConfig{
			Scale:      p.Scale,
			Speed:      p.Speed,
			Octaves:    p.Octaves,
			Lacunarity: p.Lacunarity,
			Gain:       p.Gain,
		},
		Render: RenderConfig{
			Ramp:         noise.DefaultRamp,
			FPS:          60,
			ResizePollMS: 250,
			HUD:          render.DefaultHUD,
			Gap:          render.DefaultGap,
			AltScreen:    true,
		},
		Overlay: OverlayConfig{
			Logo: DefaultLogo,
			Info: []string{"noisefetch"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
