package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/gittree/internal/config"
	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Server serves the commit graph viewer over SSH
type Server struct {
	address            string
	authorizedKeysPath string
	filter             domain.FilterOptions
	modelConfig        ui.ModelConfig
	wishServer         *ssh.Server
}

// Option configures a Server
type Option func(*Server)

// WithAuthorizedKeysPath overrides ~/.ssh/authorized_keys
func WithAuthorizedKeysPath(path string) Option {
	return func(s *Server) {
		s.authorizedKeysPath = path
	}
}

// WithFilter sets the filter every session starts with
func WithFilter(filter domain.FilterOptions) Option {
	return func(s *Server) {
		s.filter = filter
	}
}

// NewServer creates an SSH server. Every session gets its own viewer built
// from modelConfig; the History in modelConfig is shared between sessions.
func NewServer(host, port string, modelConfig ui.ModelConfig, opts ...Option) (*Server, error) {
	if modelConfig.History == nil {
		return nil, errors.New("model config has no history")
	}

	s := &Server{
		address:     net.JoinHostPort(host, port),
		modelConfig: modelConfig,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.authorizedKeysPath == "" {
		path, err := defaultAuthorizedKeysPath()
		if err != nil {
			return nil, err
		}
		s.authorizedKeysPath = path
	}

	sshDir := config.GetSSHDir()
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware runs last to first
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(filepath.Join(sshDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.address
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logging.Logger.Info("Starting SSH server", "address", s.address)

	serveErr := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("SSH server error: %w", err)
	case <-done:
	}

	logging.Logger.Info("Shutting down SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
