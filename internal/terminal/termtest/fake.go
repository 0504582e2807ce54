// Package termtest provides an in-memory terminal device for tests.
package termtest

import (
	"bytes"
	"errors"
	"sync"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("termtest: device closed")

// Device is a scripted terminal. Output is captured, keys are queued and
// the reported size can be changed at any time.
type Device struct {
	mu sync.Mutex

	out     bytes.Buffer
	keys    []byte
	rows    int
	cols    int
	raw     bool
	closed  bool
	sizeErr error

	// Counters for lifecycle assertions
	MakeRawCalls int
	RestoreCalls int
	Writes       int
}

// New creates a device of the given size.
func New(rows, cols int) *Device {
	return &Device{rows: rows, cols: cols}
}

// Write captures p.
func (d *Device) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return 0, ErrClosed
	}
	d.Writes++
	return d.out.Write(p)
}

// Size returns the scripted size.
func (d *Device) Size() (int, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sizeErr != nil {
		return 0, 0, d.sizeErr
	}
	return d.rows, d.cols, nil
}

// MakeRaw marks the device raw.
func (d *Device) MakeRaw() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.MakeRawCalls++
	d.raw = true
	return nil
}

// Restore marks the device cooked.
func (d *Device) Restore() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.RestoreCalls++
	d.raw = false
	return nil
}

// ReadKey pops one queued key.
func (d *Device) ReadKey() (byte, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.keys) == 0 {
		return 0, false, nil
	}
	b := d.keys[0]
	d.keys = d.keys[1:]
	return b, true, nil
}

// Raw reports whether the device is in raw mode.
func (d *Device) Raw() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Resize changes the size reported from now on.
func (d *Device) Resize(rows, cols int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows, d.cols = rows, cols
}

// SetSizeError makes Size fail with err (nil clears it).
func (d *Device) SetSizeError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sizeErr = err
}

// Type queues input bytes.
func (d *Device) Type(keys string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys = append(d.keys, keys...)
}

// Close makes further writes fail.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// Output returns everything written so far.
func (d *Device) Output() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.out.String()
}

// Reset discards captured output.
func (d *Device) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.out.Reset()
}
