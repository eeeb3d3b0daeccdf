package navigation

import (
	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/graph"
)

// PageSize is the number of rows moved by page-up and page-down
const PageSize = 10

// noSelection marks an undefined selection on an empty store
const noSelection = -1

// Event is a discrete input event handled by the Controller
type Event int

const (
	MoveDown Event = iota
	MoveUp
	PageDown
	PageUp
	JumpTop
	JumpBottom
	JumpParent
	JumpChild
	ToggleHelp
	ToggleGlyphs
	RequestQuit
	OpenDetails
	Checkout
	Reset
	CherryPick
	Revert
	CreateBranch
	CreateTag
)

// operations maps command events to the operation they request
var operations = map[Event]domain.Operation{
	Checkout:     domain.OpCheckout,
	Reset:        domain.OpReset,
	CherryPick:   domain.OpCherryPick,
	Revert:       domain.OpRevert,
	CreateBranch: domain.OpCreateBranch,
	CreateTag:    domain.OpCreateTag,
}

// State is a read-only snapshot of the selection state
type State struct {
	Index          int // -1 when nothing is selected
	QuitRequested  bool
	ShowHelp       bool
	Unicode        bool
	ViewportOffset int
}

// HasSelection returns true if Index points at a commit
func (s State) HasSelection() bool {
	return s.Index >= 0
}

// Request is what the caller must do on behalf of a command event
type Request struct {
	Details bool
	Intent  domain.Intent
}

// Controller is the selection state machine over a graph store.
// It never performs side effects; command events are returned as a Request
// and quitting is reported through State.QuitRequested.
type Controller struct {
	height int
	state  State
	store  *graph.Store
}

// NewController creates a Controller selecting the first commit, if any
func NewController(store *graph.Store, unicode bool) *Controller {
	c := &Controller{
		state: State{Index: noSelection, Unicode: unicode},
		store: store,
	}
	if store.Len() > 0 {
		c.state.Index = 0
	}
	return c
}

// State returns the current selection state
func (c *Controller) State() State {
	return c.state
}

// Store returns the store being navigated
func (c *Controller) Store() *graph.Store {
	return c.store
}

// Selected returns the selected commit
func (c *Controller) Selected() (domain.Commit, bool) {
	if !c.state.HasSelection() {
		return domain.Commit{}, false
	}
	return c.store.At(c.state.Index)
}

// SetHeight sets the number of visible rows and scrolls the selection into view
func (c *Controller) SetHeight(height int) {
	c.height = height
	c.scrollToSelection()
}

// SetStore swaps in a newly built store. The selection follows the previously
// selected hash when it is still present, otherwise it resets to the top.
func (c *Controller) SetStore(store *graph.Store) {
	previous, hadSelection := c.Selected()

	c.store = store
	c.state.ViewportOffset = 0
	switch {
	case store.Len() == 0:
		c.state.Index = noSelection
	case hadSelection:
		if row, ok := store.IndexOf(previous.Hash); ok {
			c.state.Index = row
		} else {
			c.state.Index = 0
		}
	default:
		c.state.Index = 0
	}
	c.scrollToSelection()
}

// Handle processes one event to completion. The returned Request is only
// meaningful when ok is true.
func (c *Controller) Handle(event Event) (req Request, ok bool) {
	switch event {
	case ToggleHelp:
		c.state.ShowHelp = !c.state.ShowHelp
		return Request{}, false
	case ToggleGlyphs:
		c.state.Unicode = !c.state.Unicode
		return Request{}, false
	case RequestQuit:
		c.state.QuitRequested = true
		return Request{}, false
	}

	// Everything below needs a selection
	if !c.state.HasSelection() {
		return Request{}, false
	}

	last := c.store.Len() - 1
	switch event {
	case MoveDown:
		if c.state.Index < last {
			c.state.Index++
		}
	case MoveUp:
		if c.state.Index > 0 {
			c.state.Index--
		}
	case PageDown:
		c.state.Index = min(c.state.Index+PageSize, last)
	case PageUp:
		c.state.Index = max(c.state.Index-PageSize, 0)
	case JumpTop:
		c.state.Index = 0
	case JumpBottom:
		c.state.Index = last
	case JumpParent:
		if row, found := c.store.ParentRow(c.state.Index); found {
			c.state.Index = row
		}
	case JumpChild:
		if row, found := c.store.ChildRow(c.state.Index); found {
			c.state.Index = row
		}
	case OpenDetails:
		commit, _ := c.Selected()
		return Request{
			Details: true,
			Intent:  domain.Intent{Hash: commit.Hash, ShortHash: commit.ShortHash},
		}, true
	default:
		op, known := operations[event]
		if !known {
			return Request{}, false
		}
		commit, _ := c.Selected()
		return Request{
			Intent: domain.Intent{
				Hash:      commit.Hash,
				Name:      DefaultRefName(op, commit.ShortHash),
				Op:        op,
				ShortHash: commit.ShortHash,
			},
		}, true
	}

	c.scrollToSelection()
	return Request{}, false
}

// DefaultRefName derives the branch or tag name offered for a commit
func DefaultRefName(op domain.Operation, shortHash string) string {
	switch op {
	case domain.OpCreateBranch:
		return "branch-" + shortHash
	case domain.OpCreateTag:
		return "tag-" + shortHash
	default:
		return ""
	}
}

// scrollToSelection keeps the selected row inside the viewport
func (c *Controller) scrollToSelection() {
	if c.height <= 0 || !c.state.HasSelection() {
		return
	}
	if c.state.Index < c.state.ViewportOffset {
		c.state.ViewportOffset = c.state.Index
	}
	if c.state.Index >= c.state.ViewportOffset+c.height {
		c.state.ViewportOffset = c.state.Index - c.height + 1
	}

	maxOffset := max(c.store.Len()-c.height, 0)
	c.state.ViewportOffset = min(max(c.state.ViewportOffset, 0), maxOffset)
}
