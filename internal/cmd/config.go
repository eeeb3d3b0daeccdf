package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/gittree/internal/config"
	"github.com/renato0307/gittree/internal/ui"
)

// ConfigCmd manages the configuration file
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"init" help:"Write the default configuration file"`
	Keys ConfigKeysCmd `cmd:"keys" help:"List key bindings (defaults and custom)"`
	Show ConfigShowCmd `cmd:"show" help:"Show the configuration file location and effective values" default:"1"`
}

// ConfigInitCmd writes the default configuration
type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing configuration file" short:"f"`
}

// Run executes the init command
func (c *ConfigInitCmd) Run(cli *CLI) error {
	path := config.GetConfigPath()

	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

// ConfigShowCmd prints the effective configuration as YAML
type ConfigShowCmd struct{}

// Run executes the show command
func (c *ConfigShowCmd) Run(cli *CLI) error {
	return showConfig(os.Stdout, config.GetConfigPath(), cli.Settings())
}

func showConfig(w io.Writer, path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	state := "not found, showing defaults"
	if _, err := os.Stat(path); err == nil {
		state = "loaded"
	}

	_, err = fmt.Fprintf(w, "# %s (%s)\n%s", path, state, data)
	return err
}

// ConfigKeysCmd lists the key bindings
type ConfigKeysCmd struct{}

// Run executes the keys command
func (c *ConfigKeysCmd) Run(cli *CLI) error {
	return printKeyBindings(os.Stdout, cli.Settings().Keys)
}

func printKeyBindings(w io.Writer, customKeys config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()

	table := tablewriter.NewWriter(w)
	table.Header("Name", "Default", "Custom", "Description")
	for _, name := range ui.GetValidKeyNames() {
		custom := ""
		if keys, ok := customKeys[name]; ok && len(keys) > 0 {
			custom = strings.Join(keys, ", ")
		}

		description := ""
		if def := ui.GetKeyDefinition(name); def != nil {
			description = def.Help
		}

		if err := table.Append(name, strings.Join(defaults[name], ", "), custom, description); err != nil {
			return fmt.Errorf("failed to build table: %w", err)
		}
	}
	return table.Render()
}
