package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/noisefetch/internal/anim"
	"github.com/vovakirdan/noisefetch/internal/config"
	"github.com/vovakirdan/noisefetch/internal/terminal"
)

// runOptions holds the animation flags. Zero values leave the
// configuration alone.
type runOptions struct {
	fps      int
	preset   string
	frames   int
	scale    float64
	speed    float64
	chars    string
	invert   bool
	hudStats bool
}

var runOpts runOptions

func init() {
	runOpts.bind(rootCmd)
}

func (o *runOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.fps, "fps", 0, "Frame rate (default: config render.fps)")
	cmd.Flags().StringVar(&o.preset, "preset", "", "Named glyph ramp (see 'noisefetch ramps')")
	cmd.Flags().IntVar(&o.frames, "frames", 0, "Stop after this many frames (0 = until q)")
	cmd.Flags().Float64Var(&o.scale, "scale", 0, "Spatial noise scale (default: config noise.scale)")
	cmd.Flags().Float64Var(&o.speed, "speed", 0, "Time scale of the animation (default: config noise.speed)")
	cmd.Flags().StringVar(&o.chars, "chars", "", "Literal glyph ramp, dark to bright (at least two glyphs)")
	cmd.Flags().BoolVar(&o.invert, "invert", false, "Reverse the glyph ramp")
	cmd.Flags().BoolVar(&o.hudStats, "hud-stats", false, "Show fps, scale and speed on the bottom row")
}

// apply overrides cfg with the flags the user set. A literal --chars
// replaces any configured preset; --preset still wins over both.
// Out-of-range values are normalised by Validate.
func (o *runOptions) apply(cfg *config.Config) error {
	if o.chars != "" {
		cfg.Render.Ramp = o.chars
		cfg.Render.Preset = ""
	}
	if err := config.ApplyPreset(cfg, o.preset); err != nil {
		return err
	}
	if o.fps > 0 {
		cfg.Render.FPS = o.fps
	}
	if o.scale != 0 {
		cfg.Noise.Scale = o.scale
	}
	if o.speed != 0 {
		cfg.Noise.Speed = o.speed
	}
	if o.invert {
		cfg.Render.Invert = true
	}
	if o.hudStats {
		cfg.Render.HUDStats = true
	}
	cfg.Validate()
	return nil
}

func runAnimate(cmd *cobra.Command, _ []string) {
	if err := animate(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// animate loads the configuration, applies the flags and runs the loop on
// the controlling terminal.
func animate(ctx context.Context) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := runOpts.apply(&cfg); err != nil {
		return err
	}

	// Output is not a terminal: print the info lines once, without escapes.
	// Piped input alone still animates.
	if !terminal.OutputIsTerminal() {
		return printPlain(os.Stdout, cfg)
	}

	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("configuration loaded", "source", cfg.Source)

	comp, err := cfg.Compositor()
	if err != nil {
		return err
	}

	tty, err := terminal.OpenTTY()
	if err != nil {
		return err
	}

	var stop atomic.Bool
	unregister := anim.StopOnSignal(&stop)
	defer unregister()

	rc := cfg.Runtime()
	rc.MaxFrames = runOpts.frames
	ctrl := terminal.NewController(tty, terminal.WithAltScreen(rc.AltScreen))
	// Run releases on its own; this covers a panic unwinding past it
	defer ctrl.Release()
	loop := anim.New(ctrl, comp, rc,
		anim.WithStopFlag(&stop),
		anim.WithLogger(logger),
	)

	if ctx == nil {
		ctx = context.Background()
	}
	_, err = loop.Run(ctx)
	return err
}

// printPlain writes the info lines as plain text.
func printPlain(w io.Writer, cfg config.Config) error {
	if len(cfg.Overlay.Info) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(cfg.Overlay.Info, "\n")+"\n")
	return err
}
