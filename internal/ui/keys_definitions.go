package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names are the keys accepted in the "keys" section of the config file.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "glyphs", Defaults: []string{"u"}, Help: "toggle unicode glyphs"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Defaults: []string{"q", "esc"}, Help: "exit application"},

	// Navigation keys
	{Name: "bottom", Defaults: []string{"G", "end"}, Help: "jump to oldest commit"},
	{Name: "child", Defaults: []string{"right", "l"}, Help: "jump to child commit"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next commit"},
	{Name: "filter", Defaults: []string{"/"}, Help: "filter history"},
	{Name: "page_down", Defaults: []string{"pgdown", "ctrl+d"}, Help: "page down"},
	{Name: "page_up", Defaults: []string{"pgup", "ctrl+u"}, Help: "page up"},
	{Name: "parent", Defaults: []string{"left", "h"}, Help: "jump to first parent"},
	{Name: "top", Defaults: []string{"g", "home"}, Help: "jump to newest commit"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous commit"},

	// Commit keys
	{Name: "branch", Defaults: []string{"b"}, Help: "create branch at commit"},
	{Name: "checkout", Defaults: []string{"c"}, Help: "checkout commit"},
	{Name: "cherry_pick", Defaults: []string{"p"}, Help: "cherry-pick commit"},
	{Name: "details", Defaults: []string{"enter"}, Help: "show commit details"},
	{Name: "reset", Defaults: []string{"x"}, Help: "reset --hard to commit"},
	{Name: "revert", Defaults: []string{"r"}, Help: "revert commit"},
	{Name: "tag", Defaults: []string{"t"}, Help: "create tag at commit"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
