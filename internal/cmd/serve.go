package cmd

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/renato0307/gittree/internal/server"
)

// ServeCmd serves the viewer over SSH
type ServeCmd struct {
	FilterFlags `embed:""`

	AuthorizedKeys string `help:"Authorized keys file (default ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Address to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
	Yes            bool   `help:"Skip confirmations and name prompts" short:"y"`
}

// Run starts the SSH server and blocks until it is stopped
func (s *ServeCmd) Run(cli *CLI) error {
	filter, err := s.Options(time.Now())
	if err != nil {
		return err
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	modelConfig, err := buildModelConfig(cli, &ViewCmd{
		ErrorClearDelay: cli.Settings().ErrorClearDelay,
		Paging:          "never",
		Yes:             s.Yes,
	})
	if err != nil {
		return err
	}
	modelConfig.History = container.HistoryService

	opts := []server.Option{server.WithFilter(filter)}
	if s.AuthorizedKeys != "" {
		opts = append(opts, server.WithAuthorizedKeysPath(s.AuthorizedKeys))
	}

	srv, err := server.NewServer(s.Host, s.Port, modelConfig, opts...)
	if err != nil {
		return err
	}

	log.Info("SSH server listening", "address", srv.Address(), "repo", cli.Repo)
	return srv.Start()
}
