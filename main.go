package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/renato0307/gittree/internal/cmd"
	"github.com/renato0307/gittree/internal/config"
	"github.com/renato0307/gittree/internal/ui"
	"github.com/renato0307/gittree/version"
)

func main() {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    version.Commit,
		Date:      version.Date,
		GoVersion: version.GoVersion,
		Tagline:   version.Tagline,
		Version:   version.Version,
	})

	// A broken config file falls back to the defaults
	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		log.Warn("Failed to load config", "error", err)
		cfg = config.Default()
	}

	// Logging, styles and the container are set up in CLI.AfterApply
	var cli cmd.CLI
	cli.SetConfig(cfg)
	ctx := kong.Parse(&cli,
		kong.Name("gittree"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		log.Error("gittree failed", "error", err)
		os.Exit(1)
	}
}
