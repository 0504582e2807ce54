package sshd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/noisefetch/internal/anim"
	"github.com/vovakirdan/noisefetch/internal/config"
	"github.com/vovakirdan/noisefetch/internal/terminal/termtest"
)

// pipeSession is the client side of an in-memory session: input is fed
// through a pipe and output is captured.
type pipeSession struct {
	in  *io.PipeReader
	inW *io.PipeWriter

	mu  sync.Mutex
	out bytes.Buffer
}

func newPipeSession() *pipeSession {
	r, w := io.Pipe()
	return &pipeSession{in: r, inW: w}
}

func (p *pipeSession) Read(b []byte) (int, error) {
	return p.in.Read(b)
}

func (p *pipeSession) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.Write(b)
}

func (p *pipeSession) output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.String()
}

// eventually polls cond until it holds or a second has passed.
func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestDeviceSizeFollowsWindow(t *testing.T) {
	sess := newPipeSession()
	defer sess.inW.Close()
	winCh := make(chan ssh.Window, 1)
	dev := NewDevice(sess, ssh.Window{Width: 80, Height: 24}, winCh)
	defer dev.Close()

	rows, cols, err := dev.Size()
	if err != nil || rows != 24 || cols != 80 {
		t.Fatalf("Size() = (%d, %d, %v), expected (24, 80, nil)", rows, cols, err)
	}

	winCh <- ssh.Window{Width: 120, Height: 40}
	eventually(t, func() bool {
		r, c, _ := dev.Size()
		return r == 40 && c == 120
	}, "window change was not picked up")
}

func TestDeviceSizeUnknown(t *testing.T) {
	sess := newPipeSession()
	defer sess.inW.Close()
	dev := NewDevice(sess, ssh.Window{}, nil)
	defer dev.Close()

	if _, _, err := dev.Size(); !errors.Is(err, ErrNoWindow) {
		t.Errorf("Size() error = %v, expected ErrNoWindow", err)
	}
}

func TestDeviceReadKey(t *testing.T) {
	sess := newPipeSession()
	defer sess.inW.Close()
	dev := NewDevice(sess, ssh.Window{Width: 10, Height: 5}, nil)
	defer dev.Close()

	if _, ok, _ := dev.ReadKey(); ok {
		t.Error("ReadKey() with no input should report nothing")
	}

	go func() {
		_, _ = sess.inW.Write([]byte("q"))
	}()

	var got byte
	eventually(t, func() bool {
		b, ok, _ := dev.ReadKey()
		got = b
		return ok
	}, "typed key never arrived")
	if got != 'q' {
		t.Errorf("ReadKey() = %q, expected 'q'", got)
	}
}

func TestDeviceWriteAndRawState(t *testing.T) {
	sess := newPipeSession()
	defer sess.inW.Close()
	dev := NewDevice(sess, ssh.Window{Width: 10, Height: 5}, nil)
	defer dev.Close()

	_ = dev.MakeRaw()
	if !dev.Raw() {
		t.Error("device should be raw after MakeRaw")
	}
	_ = dev.Restore()
	if dev.Raw() {
		t.Error("device should be cooked after Restore")
	}

	if _, err := dev.Write([]byte("hello")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if sess.output() != "hello" {
		t.Errorf("session output = %q", sess.output())
	}

	dev.Close()
	dev.Close()
}

func newTestServer(t *testing.T, frames int) *Server {
	t.Helper()
	cfg := DefaultServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.MaxFrames = frames

	app := config.Default()
	app.Render.FPS = 200

	srv, err := NewServer(cfg, app, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	return srv
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t, 0)
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}

func TestNewServerRejectsUnknownPreset(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	app := config.Default()
	app.Render.Preset = "missing"

	if _, err := NewServer(cfg, app, log.New(io.Discard)); err == nil {
		t.Error("NewServer() with an unknown preset should fail")
	}
}

func TestAnimateRunsFrameLimit(t *testing.T) {
	srv := newTestServer(t, 3)
	dev := termtest.New(12, 50)

	st, err := srv.Animate(context.Background(), dev)
	if err != nil {
		t.Fatalf("Animate() failed: %v", err)
	}
	if st.Frames != 3 || st.Reason != anim.StopMaxFrames {
		t.Errorf("stats = %+v, expected 3 frames", st)
	}
	if dev.Raw() {
		t.Error("device should be restored after the session")
	}
	if !strings.Contains(dev.Output(), "noisefetch") {
		t.Error("overlay info line should reach the session")
	}
}

func TestAnimateStopsOnContext(t *testing.T) {
	srv := newTestServer(t, 0)
	dev := termtest.New(12, 50)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	st, err := srv.Animate(ctx, dev)
	if err != nil {
		t.Fatalf("Animate() failed: %v", err)
	}
	if st.Reason != anim.StopContext {
		t.Errorf("Reason = %q, expected %q", st.Reason, anim.StopContext)
	}
}
