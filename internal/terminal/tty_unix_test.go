//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"io"
	"os"
	"testing"
)

func newPipeTTY(t *testing.T) (*TTY, *os.File, *os.File) {
	t.Helper()
	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() failed: %v", err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() failed: %v", err)
	}
	t.Cleanup(func() {
		for _, f := range []*os.File{inR, inW, outR, outW} {
			f.Close()
		}
	})
	return newTTY(inR, outW), inW, outR
}

func TestTTYPipedInputIsNotRaw(t *testing.T) {
	tty, in, _ := newPipeTTY(t)

	if err := tty.MakeRaw(); err != nil {
		t.Errorf("MakeRaw() with piped stdin = %v, expected nil", err)
	}
	if err := tty.Restore(); err != nil {
		t.Errorf("Restore() without saved state = %v, expected nil", err)
	}

	// Piped bytes are not keys and must not block the loop
	if _, err := in.Write([]byte("q")); err != nil {
		t.Fatal(err)
	}
	if b, ok, err := tty.ReadKey(); ok || err != nil {
		t.Errorf("ReadKey() with piped stdin = (%q, %v, %v), expected no key", b, ok, err)
	}
}

func TestTTYSizeFallsBack(t *testing.T) {
	tty, _, _ := newPipeTTY(t)

	rows, cols, err := tty.Size()
	if err != nil {
		t.Fatalf("Size() on a pipe failed: %v", err)
	}
	if rows != DefaultRows || cols != DefaultCols {
		t.Errorf("Size() on a pipe = %dx%d, expected %dx%d", cols, rows, DefaultCols, DefaultRows)
	}
}

func TestNormalizeSize(t *testing.T) {
	tests := []struct {
		rows, cols         int
		wantRows, wantCols int
	}{
		{0, 0, 24, 80},
		{0, 120, 24, 120},
		{40, 0, 40, 80},
		{-1, 10, 24, 10},
		{30, 100, 30, 100},
	}
	for _, tc := range tests {
		rows, cols := normalizeSize(tc.rows, tc.cols)
		if rows != tc.wantRows || cols != tc.wantCols {
			t.Errorf("normalizeSize(%d, %d) = (%d, %d), expected (%d, %d)",
				tc.rows, tc.cols, rows, cols, tc.wantRows, tc.wantCols)
		}
	}
}

func TestTTYWrite(t *testing.T) {
	tty, _, out := newPipeTTY(t)

	if _, err := tty.Write([]byte("\x1b[H")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	got := make([]byte, 3)
	if _, err := io.ReadFull(out, got); err != nil || string(got) != "\x1b[H" {
		t.Errorf("written bytes = %q (%v)", got, err)
	}
}

func TestControllerRunsWithPipedInput(t *testing.T) {
	tty, _, out := newPipeTTY(t)
	c := NewController(tty)

	if err := c.Acquire(); err != nil {
		t.Fatalf("Acquire() with piped stdin failed: %v", err)
	}
	if rows, cols := c.Size(); rows != DefaultRows || cols != DefaultCols {
		t.Errorf("Size() = %dx%d, expected the fallback size", cols, rows)
	}
	if _, ok, err := c.PollKey(); ok || err != nil {
		t.Errorf("PollKey() = (%v, %v), expected no key", ok, err)
	}
	if err := c.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	// Close the writer so the drain below ends
	tty.out.Close()
	data, err := io.ReadAll(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("acquire and release should write control sequences")
	}
}
