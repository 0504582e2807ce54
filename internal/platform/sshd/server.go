// Package sshd serves the animation over SSH via Wish. Every session with
// a PTY gets its own animation loop drawing into the session.
package sshd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"

	"github.com/vovakirdan/noisefetch/internal/anim"
	"github.com/vovakirdan/noisefetch/internal/config"
	"github.com/vovakirdan/noisefetch/internal/terminal"
)

// ServerConfig holds configuration for the SSH server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.noisefetch/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxFrames ends each session after this many frames (0 = until quit).
	MaxFrames int
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// Server wraps a Wish SSH server running one animation per session.
type Server struct {
	config ServerConfig
	app    config.Config
	server *ssh.Server
	logger *log.Logger
}

// NewServer creates a new SSH server. app supplies the noise, ramp and
// overlay settings shared by all sessions.
func NewServer(cfg ServerConfig, app config.Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "noisefetch-ssh",
		})
	}

	// Fail early on a bad preset instead of once per session
	if _, err := app.Compositor(); err != nil {
		return nil, err
	}

	srv := &Server{
		config: cfg,
		app:    app,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		dir := config.HomeDir()
		if dir == "" {
			return nil, errors.New("sshd: cannot get home directory")
		}
		hostKeyPath = filepath.Join(dir, "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("sshd: cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: log, require a PTY, animate
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.animateMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("sshd: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// animateMiddleware runs the animation for the session's lifetime.
func (s *Server) animateMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		pty, winCh, ok := sshSession.Pty()
		if !ok {
			wish.Fatalln(sshSession, "noisefetch: a PTY is required")
			return
		}

		dev := NewDevice(sshSession, pty.Window, winCh)
		defer dev.Close()

		st, err := s.Animate(sshSession.Context(), dev)
		if err != nil {
			s.logger.Warn("session animation failed",
				"user", sshSession.User(),
				"error", err,
			)
		}
		s.logger.Info("session animation stopped",
			"user", sshSession.User(),
			"reason", st.Reason,
			"frames", st.Frames,
			"overruns", st.Overruns,
			"bytes", st.Bytes,
		)
		next(sshSession)
	}
}

// Animate runs one animation loop on dev until the quit key, ctx
// cancellation or the configured frame limit.
func (s *Server) Animate(ctx context.Context, dev terminal.Device) (anim.Stats, error) {
	comp, err := s.app.Compositor()
	if err != nil {
		return anim.Stats{}, err
	}

	rc := s.app.Runtime()
	rc.MaxFrames = s.config.MaxFrames
	ctrl := terminal.NewController(dev, terminal.WithAltScreen(rc.AltScreen))
	loop := anim.New(ctrl, comp, rc, anim.WithLogger(s.logger.WithPrefix("session")))
	return loop.Run(ctx)
}

// loggingMiddleware logs SSH session events.
func (s *Server) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	serveErr := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-done:
	case err := <-serveErr:
		return fmt.Errorf("sshd: serve: %w", err)
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
