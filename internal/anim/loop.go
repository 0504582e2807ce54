// Package anim runs the animation: it paces frames, polls for resizes and
// the quit key, and keeps the terminal acquire/release pair balanced on
// every exit path.
package anim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/noisefetch/internal/core"
	"github.com/vovakirdan/noisefetch/internal/render"
	"github.com/vovakirdan/noisefetch/internal/terminal"
)

// maxKeysPerFrame bounds how much buffered input one frame drains.
const maxKeysPerFrame = 64

// StopReason tells why a run ended.
type StopReason string

const (
	StopNone      StopReason = ""
	StopQuitKey   StopReason = "quit key"
	StopSignal    StopReason = "signal"
	StopContext   StopReason = "context done"
	StopMaxFrames StopReason = "frame limit"
	StopError     StopReason = "error"
)

// Stats summarises a run.
type Stats struct {
	Frames   int
	Overruns int // Frames that missed their deadline
	Resizes  int
	Runs     int // Cursor moves emitted
	Cells    int // Cells written
	Bytes    int // Frame bytes written
	Elapsed  time.Duration
	Reason   StopReason
}

// Loop owns one animation run over a terminal controller.
// It is single-threaded: everything happens on the goroutine calling Run.
type Loop struct {
	ctrl   *terminal.Controller
	comp   *render.Compositor
	diff   *render.DiffRenderer
	cfg    core.RuntimeConfig
	clock  Clock
	stop   *atomic.Bool
	logger *log.Logger
	fb     *core.FrameBuffer
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithStopFlag sets the cooperative stop flag, typically set by StopOnSignal.
func WithStopFlag(flag *atomic.Bool) Option {
	return func(l *Loop) {
		l.stop = flag
	}
}

// WithLogger sets the logger for resize and summary messages.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// New creates a loop. Nothing touches the terminal until Run.
func New(ctrl *terminal.Controller, comp *render.Compositor, cfg core.RuntimeConfig, opts ...Option) *Loop {
	l := &Loop{
		ctrl:  ctrl,
		comp:  comp,
		diff:  render.NewDiffRenderer(),
		cfg:   cfg,
		clock: realClock{},
		stop:  new(atomic.Bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	if l.cfg.ResizePoll <= 0 {
		l.cfg.ResizePoll = core.DefaultConfig().ResizePoll
	}
	return l
}

// Stop asks the loop to finish at the next frame boundary.
func (l *Loop) Stop() {
	l.stop.Store(true)
}

// Run acquires the terminal and animates until the quit key, the stop flag,
// ctx cancellation, the frame limit or a fatal error. The terminal is
// released before Run returns, whatever the cause.
func (l *Loop) Run(ctx context.Context) (st Stats, err error) {
	if err := l.ctrl.Acquire(); err != nil {
		return st, fmt.Errorf("anim: acquire terminal: %w", err)
	}

	start := l.clock.Now()
	defer func() {
		if rerr := l.ctrl.Release(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("anim: release terminal: %w", rerr))
		}
		if err != nil {
			st.Reason = StopError
		}
		st.Elapsed = l.clock.Now().Sub(start)
		l.logger.Info("animation stopped",
			"reason", st.Reason,
			"frames", st.Frames,
			"overruns", st.Overruns,
			"resizes", st.Resizes,
			"runs", st.Runs,
			"bytes", st.Bytes,
			"elapsed", st.Elapsed,
		)
	}()

	rows, cols := l.ctrl.Size()
	fb, err := core.NewFrameBuffer(rows, cols)
	if err != nil {
		return st, fmt.Errorf("anim: allocate frame buffer: %w", err)
	}
	l.fb = fb

	interval := l.cfg.FrameInterval()
	next := start
	lastPoll := start
	l.logger.Debug("animation started", "rows", rows, "cols", cols, "interval", interval)

	for {
		if reason := l.stopRequested(ctx); reason != StopNone {
			st.Reason = reason
			return st, nil
		}

		now := l.clock.Now()
		if now.Sub(lastPoll) >= l.cfg.ResizePoll {
			lastPoll = now
			if err := l.applyResize(&st); err != nil {
				return st, err
			}
		}

		l.comp.Paint(fb.Current, now.Sub(start).Seconds())
		fs, err := l.diff.Render(l.ctrl, fb)
		if err != nil {
			return st, fmt.Errorf("anim: present frame: %w", err)
		}
		st.Frames++
		st.Runs += fs.Runs
		st.Cells += fs.Cells
		st.Bytes += fs.Bytes

		quit, err := l.pollQuit()
		if err != nil {
			return st, err
		}
		if quit {
			st.Reason = StopQuitKey
			return st, nil
		}
		if l.cfg.MaxFrames > 0 && st.Frames >= l.cfg.MaxFrames {
			st.Reason = StopMaxFrames
			return st, nil
		}

		// Absolute deadline; on overrun drop the lost time and resync
		next = next.Add(interval)
		now = l.clock.Now()
		if !now.Before(next) {
			next = now.Add(interval)
			st.Overruns++
		}
		l.clock.Sleep(ctx, next.Sub(now))
	}
}

func (l *Loop) stopRequested(ctx context.Context) StopReason {
	if l.stop.Load() {
		return StopSignal
	}
	if ctx.Err() != nil {
		return StopContext
	}
	return StopNone
}

// applyResize reallocates both buffers after a size change. Previous is
// made equal to the blank Current so it matches the freshly cleared
// screen, and the next frame repaints everything that is not blank.
func (l *Loop) applyResize(st *Stats) error {
	rows, cols, changed, err := l.ctrl.PollResize()
	if !changed {
		if err != nil {
			l.logger.Warn("terminal size unavailable", "error", err)
		}
		return nil
	}

	if rerr := l.fb.Resize(rows, cols); rerr != nil {
		return fmt.Errorf("anim: reallocate frame buffer: %w", rerr)
	}
	l.fb.Sync()
	if err != nil {
		return fmt.Errorf("anim: %w", err)
	}
	st.Resizes++
	l.logger.Debug("terminal resized", "rows", rows, "cols", cols)
	return nil
}

// pollQuit drains pending input and reports whether q or Q was pressed.
func (l *Loop) pollQuit() (bool, error) {
	for i := 0; i < maxKeysPerFrame; i++ {
		b, ok, err := l.ctrl.PollKey()
		if err != nil {
			return false, fmt.Errorf("anim: read input: %w", err)
		}
		if !ok {
			return false, nil
		}
		if b == 'q' || b == 'Q' {
			return true, nil
		}
	}
	return false, nil
}
