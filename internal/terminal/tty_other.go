//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"os"

	"golang.org/x/term"
)

// TTY is unavailable on this platform.
type TTY struct{}

// OpenTTY always fails on platforms without termios.
func OpenTTY() (*TTY, error) {
	return nil, ErrUnsupported
}

// OutputIsTerminal reports whether standard output is a terminal.
func OutputIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (t *TTY) Write(p []byte) (int, error)  { return 0, ErrUnsupported }
func (t *TTY) Size() (int, int, error)      { return 0, 0, ErrUnsupported }
func (t *TTY) MakeRaw() error               { return ErrUnsupported }
func (t *TTY) Restore() error               { return nil }
func (t *TTY) ReadKey() (byte, bool, error) { return 0, false, ErrUnsupported }
