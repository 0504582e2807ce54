package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/noisefetch/internal/render"
)

// Controller drives a Device through Inactive -> Active -> Inactive.
// While active the terminal is raw, the cursor is hidden and the scroll
// region excludes the last (HUD) row. Release is safe to call any number
// of times; only the first call after Acquire does anything.
type Controller struct {
	dev       Device
	altScreen bool

	mu     sync.Mutex
	active bool
	rows   int
	cols   int
	seq    []byte
}

// Option configures a Controller.
type Option func(*Controller)

// WithAltScreen makes the controller switch to the alternate screen buffer
// while active.
func WithAltScreen(enabled bool) Option {
	return func(c *Controller) {
		c.altScreen = enabled
	}
}

// NewController creates an inactive controller for dev.
func NewController(dev Device, opts ...Option) *Controller {
	c := &Controller{dev: dev}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Size returns the dimensions recorded at the last Acquire or PollResize.
func (c *Controller) Size() (rows, cols int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows, c.cols
}

// Acquire puts the terminal into animation mode: raw input, hidden cursor,
// cleared screen and a scroll region of rows 1..rows-1. A zero dimension
// reported by the device is taken as DefaultRows or DefaultCols.
// If any step fails the terminal is restored before the error is returned.
func (c *Controller) Acquire() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		return nil
	}

	rows, cols, err := c.dev.Size()
	if err != nil {
		return err
	}
	rows, cols = normalizeSize(rows, cols)

	if err := c.dev.MakeRaw(); err != nil {
		return err
	}

	seq := c.seq[:0]
	if c.altScreen {
		seq = append(seq, render.SeqAltScreenOn...)
	}
	seq = append(seq, render.SeqCursorHide...)
	seq = append(seq, render.SeqAutoWrapOff...)
	seq = c.appendReset(seq, rows)
	c.seq = seq

	if _, err := c.dev.Write(seq); err != nil {
		c.active = true
		return errors.Join(fmt.Errorf("terminal: enter animation mode: %w", err), c.releaseLocked())
	}

	c.rows, c.cols = rows, cols
	c.active = true
	return nil
}

// appendReset clears the screen, constrains the scroll region to exclude
// the HUD row and homes the cursor.
func (c *Controller) appendReset(seq []byte, rows int) []byte {
	seq = append(seq, render.SeqClear...)
	if rows >= 2 {
		seq = render.AppendScrollRegion(seq, 1, rows-1)
	}
	return append(seq, render.SeqHome...)
}

// Release restores the saved attributes, drops the scroll region and shows
// the cursor again. It is idempotent.
func (c *Controller) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.releaseLocked()
}

func (c *Controller) releaseLocked() error {
	if !c.active {
		return nil
	}
	c.active = false

	restoreErr := c.dev.Restore()

	seq := c.seq[:0]
	seq = append(seq, render.SeqScrollReset...)
	seq = append(seq, render.SeqSGR0...)
	seq = append(seq, render.SeqAutoWrapOn...)
	seq = append(seq, render.SeqCursorShow...)
	if c.altScreen {
		seq = append(seq, render.SeqAltScreenOff...)
	}
	c.seq = seq

	var writeErr error
	if _, err := c.dev.Write(seq); err != nil {
		writeErr = fmt.Errorf("terminal: leave animation mode: %w", err)
	}
	return errors.Join(restoreErr, writeErr)
}

// PollResize reads the device size. When it differs from the recorded one
// the scroll region is reset for the new height and the screen is cleared,
// and changed is true.
func (c *Controller) PollResize() (rows, cols int, changed bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, cols, err = c.dev.Size()
	if err != nil {
		return c.rows, c.cols, false, err
	}
	rows, cols = normalizeSize(rows, cols)
	if rows == c.rows && cols == c.cols {
		return rows, cols, false, nil
	}
	c.rows, c.cols = rows, cols

	if c.active {
		seq := c.seq[:0]
		seq = append(seq, render.SeqScrollReset...)
		seq = c.appendReset(seq, rows)
		c.seq = seq
		if _, err := c.dev.Write(seq); err != nil {
			return rows, cols, true, fmt.Errorf("terminal: reset after resize: %w", err)
		}
	}
	return rows, cols, true, nil
}

// Write sends frame output to the device.
func (c *Controller) Write(p []byte) (int, error) {
	return c.dev.Write(p)
}

// PollKey returns a pending input byte without blocking.
func (c *Controller) PollKey() (byte, bool, error) {
	return c.dev.ReadKey()
}
