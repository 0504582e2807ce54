//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is the local terminal on stdin/stdout. When stdin is not a terminal
// the animation still runs: raw mode and key reads become no-ops and only
// signals stop it.
type TTY struct {
	in     *os.File
	out    *os.File
	inFd   int
	outFd  int
	inTerm bool
	saved  *term.State
	buf    [1]byte
}

// OpenTTY returns a device for the process's standard streams.
func OpenTTY() (*TTY, error) {
	return newTTY(os.Stdin, os.Stdout), nil
}

func newTTY(in, out *os.File) *TTY {
	return &TTY{
		in:    in,
		out:   out,
		inFd:   int(in.Fd()),
		outFd:  int(out.Fd()),
		inTerm: term.IsTerminal(int(in.Fd())),
	}
}

// OutputIsTerminal reports whether standard output is a terminal.
func OutputIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Write sends raw bytes to the terminal.
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the current terminal dimensions. When the size cannot be
// read, or a dimension is zero, DefaultRows x DefaultCols stands in.
func (t *TTY) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err != nil {
		cols, rows, gerr := term.GetSize(t.outFd)
		if gerr != nil {
			return DefaultRows, DefaultCols, nil
		}
		rows, cols = normalizeSize(rows, cols)
		return rows, cols, nil
	}
	rows, cols := normalizeSize(int(ws.Row), int(ws.Col))
	return rows, cols, nil
}

// MakeRaw saves the terminal attributes and switches off canonical mode
// and echo. Signal generation stays on so Ctrl+C still raises SIGINT.
// VMIN=0/VTIME=0 make every read return immediately.
// Without a terminal on stdin there is nothing to change.
func (t *TTY) MakeRaw() error {
	if !t.inTerm {
		return nil
	}

	saved, err := term.GetState(t.inFd)
	if err != nil {
		return fmt.Errorf("terminal: save attributes: %w", err)
	}

	tios, err := unix.IoctlGetTermios(t.inFd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("terminal: read attributes: %w", err)
	}
	tios.Lflag &^= unix.ICANON | unix.ECHO
	tios.Cc[unix.VMIN] = 0
	tios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(t.inFd, ioctlSetTermios, tios); err != nil {
		return fmt.Errorf("terminal: set attributes: %w", err)
	}

	t.saved = saved
	return nil
}

// Restore puts back the attributes saved by MakeRaw. Calling it without a
// saved state, or twice, is a no-op.
func (t *TTY) Restore() error {
	if t.saved == nil {
		return nil
	}
	if err := term.Restore(t.inFd, t.saved); err != nil {
		return fmt.Errorf("terminal: restore attributes: %w", err)
	}
	t.saved = nil
	return nil
}

// ReadKey reads a single pending byte from stdin. It only reads while raw
// mode is on, since a read would otherwise block.
func (t *TTY) ReadKey() (byte, bool, error) {
	if t.saved == nil {
		return 0, false, nil
	}
	n, err := unix.Read(t.inFd, t.buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("terminal: read input: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return t.buf[0], true, nil
}
