package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.raycaster/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the level menu and viewer to SSH clients.
// Sessions share the store and texture; each gets its own renderer.
type SSHServer struct {
	config  SSHServerConfig
	base    Session
	catalog *registry.Catalog
	server  *ssh.Server
	logger  *log.Logger
	active  atomic.Int64
}

// MinWidth and MinHeight are the smallest terminal accepted over SSH.
const (
	MinWidth  = 20
	MinHeight = 6
)

// NewSSHServer creates a new SSH server. base carries the shared
// configuration, texture, store and logger; its Level is ignored.
func NewSSHServer(cfg SSHServerConfig, base Session, cat *registry.Catalog) (*SSHServer, error) {
	logger := base.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "raycaster-ssh",
		})
		base.Logger = logger
	}
	// Screenshots would land on the server's disk.
	base.ScreenshotDir = ""

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config:  cfg,
		base:    base,
		catalog: cat,
		logger:  logger,
	}
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sizeGuard,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh server: %w", err)
	}
	return srv, nil
}

// hostKeyPath returns path, or ~/.raycaster/host_key when empty, and makes
// sure its directory exists. wish generates the key on first use.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh server: home directory: %w", err)
		}
		path = filepath.Join(home, ".raycaster", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh server: host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates the menu program for one SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	base := s.base
	base.Renderer = bubbletea.MakeRenderer(sess)
	base.Logger = s.logger.With("user", sess.User())

	model := NewSessionModel(base, s.catalog, pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// sizeGuard turns away sessions without a PTY or with a terminal too
// small to show a frame.
func (s *SSHServer) sizeGuard(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, _, ok := sess.Pty()
		switch {
		case !ok:
			wish.Fatalln(sess, "raycaster needs a terminal: connect with ssh -t")
		case pty.Window.Width < MinWidth || pty.Window.Height < MinHeight:
			wish.Fatalf(sess, "terminal is %dx%d, raycaster needs at least %dx%d\n",
				pty.Window.Width, pty.Window.Height, MinWidth, MinHeight)
		default:
			next(sess)
		}
	}
}

// loggingMiddleware logs session start and end.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		active := s.active.Add(1)
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"active", active,
		)
		defer func() {
			s.logger.Info("session ended",
				"user", sess.User(),
				"duration", time.Since(started).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// Active returns the number of connected sessions.
func (s *SSHServer) Active() int64 {
	return s.active.Load()
}

// Serve listens until ctx is cancelled or the server fails, then shuts
// down. The store belongs to the caller.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.Active())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("ssh server: %w", err)
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
