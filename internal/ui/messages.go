package ui

import (
	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/services"
)

// historyLoadedMsg carries a freshly built snapshot
type historyLoadedMsg struct {
	err      error
	filter   domain.FilterOptions
	snapshot *services.Snapshot
}

// operationDoneMsg reports the outcome of a mutating command
type operationDoneMsg struct {
	err    error
	intent domain.Intent
}

// detailsLoadedMsg carries the details of one commit
type detailsLoadedMsg struct {
	details *domain.CommitDetails
	err     error
}

// pagerClosedMsg is sent when the external pager exits
type pagerClosedMsg struct {
	err error
}

// clearErrorMsg is sent after the error display delay expires
type clearErrorMsg struct{}

// clearStatusMsg is sent after the status message delay expires
type clearStatusMsg struct{}
