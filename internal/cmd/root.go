package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/gittree/internal/config"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/theme"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	NoCache     bool             `help:"Do not use the commit details cache"`
	NoColor     bool             `help:"Disable colors" env:"GITTREE_NO_COLOR"`
	Repo        string           `help:"Path inside the repository to show" short:"C" default:"." type:"path"`
	Style       string           `help:"Color style" enum:"auto,light,dark" default:"auto" env:"GITTREE_STYLE"`
	Unicode     bool             `help:"Use Unicode lane characters" env:"GITTREE_UNICODE"`

	View   ViewCmd   `cmd:"" help:"Browse the commit graph (default)" default:"1"`
	Print  PrintCmd  `cmd:"print" help:"Print the commit graph to stdout"`
	Refs   RefsCmd   `cmd:"refs" help:"List branches, remote branches and tags"`
	Serve  ServeCmd  `cmd:"serve" help:"Serve the commit graph viewer over SSH"`
	Config ConfigCmd `cmd:"config" help:"Manage the configuration file (init, show, keys)"`

	// Internal fields (not flags)
	config *config.Config `kong:"-"`
}

// SetConfig sets the loaded configuration file on the CLI struct
func (c *CLI) SetConfig(cfg *config.Config) {
	c.config = cfg
}

// Settings returns the loaded configuration, or the defaults
func (c *CLI) Settings() *config.Config {
	if c.config == nil {
		c.config = config.Default()
	}
	return c.config
}

// AfterApply applies config file values under flags and env, then
// initializes logging and styles
func (c *CLI) AfterApply() error {
	c.applyConfig()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Logging initialized", "file", logFilePath)
	}

	cfg := c.Settings()
	theme.Configure(theme.Options{
		Graph1:  cfg.Colors.Graph1,
		Graph2:  cfg.Colors.Graph2,
		Head:    cfg.Colors.Head,
		NoColor: c.NoColor,
		Style:   c.Style,
	})

	return nil
}

// applyConfig fills flags still at their default, with no env override,
// from the config file. Precedence: flags > env > config file > defaults.
func (c *CLI) applyConfig() {
	cfg := c.Settings()

	if !c.Debug && !hasEnv("GITTREE_DEBUG") && cfg.Debug {
		c.Debug = true
	}
	if c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("GITTREE_MAX_LOG_FILES") {
		c.MaxLogFiles = cfg.MaxLogFiles
	}
	if !c.NoColor && !hasEnv("GITTREE_NO_COLOR") && cfg.NoColor {
		c.NoColor = true
	}
	if c.Style == config.DefaultStyle && !hasEnv("GITTREE_STYLE") && cfg.Style != "" {
		c.Style = cfg.Style
	}
	if !c.Unicode && !hasEnv("GITTREE_UNICODE") && cfg.Unicode {
		c.Unicode = true
	}
	if !cfg.Cache {
		c.NoCache = true
	}
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// openContainer builds the container for commands that need a repository
func (c *CLI) openContainer() (*Container, error) {
	container, err := NewContainer(c)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return container, nil
}
