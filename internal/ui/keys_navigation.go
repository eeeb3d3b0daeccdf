package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/gittree/internal/config"
)

// NavigationKeys defines key bindings for moving through the graph
type NavigationKeys struct {
	Bottom   key.Binding
	Child    key.Binding
	Down     key.Binding
	Filter   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Parent   key.Binding
	Top      key.Binding
	Up       key.Binding
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Bottom:   buildBinding("bottom", defaults, customKeys),
		Child:    buildBinding("child", defaults, customKeys),
		Down:     buildBinding("down", defaults, customKeys),
		Filter:   buildBinding("filter", defaults, customKeys),
		PageDown: buildBinding("page_down", defaults, customKeys),
		PageUp:   buildBinding("page_up", defaults, customKeys),
		Parent:   buildBinding("parent", defaults, customKeys),
		Top:      buildBinding("top", defaults, customKeys),
		Up:       buildBinding("up", defaults, customKeys),
	}
}
