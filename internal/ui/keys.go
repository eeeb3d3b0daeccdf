package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/gittree/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Commit      CommitKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates a KeyMap, applying customKeys over the defaults
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Commit:      newCommitKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
	}
}

// ShortHelp implements help.KeyMap for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Up,
		k.Navigation.Down,
		k.Navigation.Parent,
		k.Commit.Details,
		k.Navigation.Filter,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Navigation.Up, k.Navigation.Down, k.Navigation.PageUp, k.Navigation.PageDown,
			k.Navigation.Top, k.Navigation.Bottom, k.Navigation.Parent, k.Navigation.Child,
			k.Navigation.Filter,
		},
		{
			k.Commit.Details, k.Commit.Checkout, k.Commit.Reset, k.Commit.CherryPick,
			k.Commit.Revert, k.Commit.Branch, k.Commit.Tag,
		},
		{
			k.Application.Glyphs, k.Application.Help, k.Application.Quit, k.Application.ForceQuit,
		},
	}
}

// buildBinding creates a binding from its definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
