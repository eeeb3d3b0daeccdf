package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/ui"
)

// sessionModel wraps ui.Model to log the end of an SSH session
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler builds a fresh viewer for each SSH session over a freshly loaded
// history snapshot
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := uuid.New().String()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	cfg := s.modelConfig
	snapshot, err := cfg.History.Load(sess.Context(), s.filter)
	if err != nil {
		logging.Logger.Error("Failed to load history for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	cfg.DevMode = false
	// The remote side has no local pager
	cfg.Paging = ui.PagingNever
	cfg.Snapshot = snapshot

	return &sessionModel{
		Model:     ui.NewModel(cfg),
		sessionID: sessionID,
		startTime: time.Now(),
	}, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel displays an error until a key is pressed
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return e, tea.Quit
	}
	return e, nil
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n\nPress any key to disconnect.\n", e.err)
}
