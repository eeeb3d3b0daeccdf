package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/gittree/internal/config"
)

// CommitKeys defines key bindings acting on the selected commit
type CommitKeys struct {
	Branch     key.Binding
	Checkout   key.Binding
	CherryPick key.Binding
	Details    key.Binding
	Reset      key.Binding
	Revert     key.Binding
	Tag        key.Binding
}

func newCommitKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) CommitKeys {
	return CommitKeys{
		Branch:     buildBinding("branch", defaults, customKeys),
		Checkout:   buildBinding("checkout", defaults, customKeys),
		CherryPick: buildBinding("cherry_pick", defaults, customKeys),
		Details:    buildBinding("details", defaults, customKeys),
		Reset:      buildBinding("reset", defaults, customKeys),
		Revert:     buildBinding("revert", defaults, customKeys),
		Tag:        buildBinding("tag", defaults, customKeys),
	}
}
