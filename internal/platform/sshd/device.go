package sshd

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/ssh"
)

// ErrNoWindow is returned by Size before the client has reported a window.
var ErrNoWindow = errors.New("sshd: window size unknown")

// keyBuffer bounds input queued between frames; excess bytes are dropped.
const keyBuffer = 256

// Device adapts an SSH session to terminal.Device. The remote client's
// terminal is already raw, so MakeRaw and Restore only track state.
// Input is read by a goroutine and queued for ReadKey; window changes are
// tracked by another and picked up by Size.
type Device struct {
	w    io.Writer
	keys chan byte
	done chan struct{}
	once sync.Once

	mu   sync.Mutex
	rows int
	cols int
	raw  bool
}

// NewDevice starts the input and window readers. Close stops them.
func NewDevice(rw io.ReadWriter, win ssh.Window, winCh <-chan ssh.Window) *Device {
	d := &Device{
		w:    rw,
		keys: make(chan byte, keyBuffer),
		done: make(chan struct{}),
		rows: win.Height,
		cols: win.Width,
	}
	go d.readInput(rw)
	if winCh != nil {
		go d.watchWindow(winCh)
	}
	return d
}

func (d *Device) readInput(r io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case d.keys <- b:
			case <-d.done:
				return
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

func (d *Device) watchWindow(winCh <-chan ssh.Window) {
	for {
		select {
		case w, ok := <-winCh:
			if !ok {
				return
			}
			d.mu.Lock()
			d.rows, d.cols = w.Height, w.Width
			d.mu.Unlock()
		case <-d.done:
			return
		}
	}
}

// Write sends output to the session.
func (d *Device) Write(p []byte) (int, error) {
	return d.w.Write(p)
}

// Size returns the last window size reported by the client.
func (d *Device) Size() (int, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.rows <= 0 || d.cols <= 0 {
		return 0, 0, ErrNoWindow
	}
	return d.rows, d.cols, nil
}

// MakeRaw marks the device raw.
func (d *Device) MakeRaw() error {
	d.mu.Lock()
	d.raw = true
	d.mu.Unlock()
	return nil
}

// Restore marks the device cooked.
func (d *Device) Restore() error {
	d.mu.Lock()
	d.raw = false
	d.mu.Unlock()
	return nil
}

// Raw reports whether the device is between MakeRaw and Restore.
func (d *Device) Raw() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// ReadKey returns a queued input byte without blocking.
func (d *Device) ReadKey() (byte, bool, error) {
	select {
	case b := <-d.keys:
		return b, true, nil
	default:
		return 0, false, nil
	}
}

// Close stops the background readers. The session itself stays open.
func (d *Device) Close() {
	d.once.Do(func() {
		close(d.done)
	})
}
