package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/gittree/internal/config"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/ui"
)

// ViewCmd starts the interactive viewer
type ViewCmd struct {
	FilterFlags `embed:""`

	DateFormat      string `help:"Go time layout for commit dates"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Paging          string `help:"Where commit details are shown" enum:"auto,always,never" default:"auto" env:"GITTREE_PAGING"`
	Yes             bool   `help:"Skip confirmations and name prompts" short:"y"`
}

// Run executes the viewer
func (v *ViewCmd) Run(cli *CLI) error {
	filter, err := v.Options(time.Now())
	if err != nil {
		return err
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	modelConfig, err := buildModelConfig(cli, v)
	if err != nil {
		return err
	}
	modelConfig.History = container.HistoryService

	logging.Logger.Info("Loading history", "repo", cli.Repo)
	snapshot, err := container.HistoryService.Load(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	modelConfig.Snapshot = snapshot

	p := tea.NewProgram(ui.NewModel(modelConfig), tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// buildModelConfig resolves the viewer settings from flags and the config file
func buildModelConfig(cli *CLI, v *ViewCmd) (ui.ModelConfig, error) {
	cfg := cli.Settings()

	// Flags still at their default take the config file value
	if v.DateFormat == "" {
		v.DateFormat = cfg.DateFormat
	}
	if v.ErrorClearDelay == config.DefaultErrorClearDelay {
		v.ErrorClearDelay = cfg.ErrorClearDelay
	}
	if v.Paging == config.DefaultPaging && !hasEnv("GITTREE_PAGING") && cfg.Paging != "" {
		v.Paging = cfg.Paging
	}

	if err := cfg.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return ui.ModelConfig{}, fmt.Errorf("invalid key bindings in %s: %w", config.GetConfigPath(), err)
	}

	return ui.ModelConfig{
		AssumeYes:        v.Yes,
		ConfirmDangerous: cfg.ConfirmDangerous,
		DateFormat:       v.DateFormat,
		DevMode:          v.Dev,
		ErrorClearDelay:  time.Duration(v.ErrorClearDelay) * time.Second,
		Keys:             cfg.Keys,
		Location:         time.Local,
		Paging:           v.Paging,
		Unicode:          cli.Unicode,
	}, nil
}
