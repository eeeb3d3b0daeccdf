package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/gittree/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Glyphs    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Glyphs:    buildBinding("glyphs", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
	}
}
