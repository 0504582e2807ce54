// Package terminal owns the raw terminal: attribute save/restore, cursor
// visibility, the scroll region that keeps the HUD row still, resize polling
// and non-blocking key reads.
package terminal

import (
	"errors"
	"io"
)

// ErrUnsupported is returned on platforms without termios support.
var ErrUnsupported = errors.New("terminal: unsupported platform")

// Fallback dimensions for a device that reports a zero size.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// normalizeSize substitutes the fallback for each zero or negative dimension.
func normalizeSize(rows, cols int) (int, int) {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	return rows, cols
}

// Device is a terminal endpoint: a local TTY or a remote session.
type Device interface {
	io.Writer

	// Size returns the current terminal dimensions.
	Size() (rows, cols int, err error)

	// MakeRaw saves the current attributes, then disables canonical mode
	// and echo and makes reads non-blocking.
	MakeRaw() error

	// Restore puts back the attributes saved by MakeRaw.
	Restore() error

	// ReadKey returns one pending input byte without blocking.
	// ok is false when no input is available.
	ReadKey() (b byte, ok bool, err error)
}
