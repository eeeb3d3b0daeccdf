package navigation

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/graph"
)

// linearStore builds n commits where row i's first parent is row i+1
func linearStore(n int) *graph.Store {
	commits := make([]domain.Commit, n)
	for i := range commits {
		commits[i] = domain.Commit{
			Hash:      fmt.Sprintf("hash%02d", i),
			ShortHash: fmt.Sprintf("h%02d", i),
		}
		if i+1 < n {
			commits[i].Parents = []string{fmt.Sprintf("hash%02d", i+1)}
		}
	}
	return graph.NewStore(commits, domain.FilterOptions{})
}

func TestController_LinearMovement(t *testing.T) {
	c := NewController(linearStore(25), false)

	tests := []struct {
		event    Event
		expected int
	}{
		{MoveUp, 0},
		{MoveDown, 1},
		{MoveDown, 2},
		{PageDown, 12},
		{PageDown, 22},
		{PageDown, 24},
		{MoveDown, 24},
		{PageUp, 14},
		{JumpTop, 0},
		{PageUp, 0},
		{JumpBottom, 24},
		{MoveUp, 23},
	}

	for i, tt := range tests {
		_, ok := c.Handle(tt.event)
		assert.False(t, ok)
		assert.Equal(t, tt.expected, c.State().Index, "step %d", i)
	}
}

func TestController_EmptyStore(t *testing.T) {
	c := NewController(graph.NewStore(nil, domain.FilterOptions{}), false)

	for _, event := range []Event{MoveDown, MoveUp, PageDown, PageUp, JumpTop, JumpBottom, JumpParent, JumpChild} {
		c.Handle(event)
		assert.False(t, c.State().HasSelection())
		assert.Equal(t, -1, c.State().Index)
	}

	for _, event := range []Event{OpenDetails, Checkout, Reset, CherryPick, Revert, CreateBranch, CreateTag} {
		_, ok := c.Handle(event)
		assert.False(t, ok, "no request without a selection")
	}

	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestController_SingleElementStore(t *testing.T) {
	c := NewController(linearStore(1), false)

	for _, event := range []Event{MoveDown, MoveUp, PageDown, PageUp, JumpTop, JumpBottom, JumpParent, JumpChild} {
		c.Handle(event)
		assert.Equal(t, 0, c.State().Index)
	}
}

func TestController_RandomEventsStayInBounds(t *testing.T) {
	events := []Event{MoveDown, MoveUp, PageDown, PageUp, JumpTop, JumpBottom, JumpParent, JumpChild}
	rng := rand.New(rand.NewSource(42))

	for _, size := range []int{1, 2, 7, 31} {
		c := NewController(linearStore(size), false)
		c.SetHeight(5)
		for i := 0; i < 2000; i++ {
			c.Handle(events[rng.Intn(len(events))])
			state := c.State()
			require.GreaterOrEqual(t, state.Index, 0)
			require.LessOrEqual(t, state.Index, size-1)
			require.GreaterOrEqual(t, state.Index, state.ViewportOffset)
			require.Less(t, state.Index, state.ViewportOffset+5)
		}
	}
}

func TestController_JumpParentFromRootIsNoop(t *testing.T) {
	c := NewController(linearStore(3), false)
	c.Handle(JumpBottom)

	c.Handle(JumpParent)

	assert.Equal(t, 2, c.State().Index)
}

func TestController_JumpChildWithoutChildrenIsNoop(t *testing.T) {
	c := NewController(linearStore(3), false)

	c.Handle(JumpChild)

	assert.Equal(t, 0, c.State().Index)
}

func TestController_JumpParentOutsideRangeIsNoop(t *testing.T) {
	store := graph.NewStore([]domain.Commit{
		{Hash: "b", Parents: []string{"not-loaded"}},
	}, domain.FilterOptions{})
	c := NewController(store, false)

	c.Handle(JumpParent)

	assert.Equal(t, 0, c.State().Index)
}

func TestController_JumpChildTieBreak(t *testing.T) {
	store := graph.NewStore([]domain.Commit{
		{Hash: "x"},
		{Hash: "c2", Parents: []string{"base"}},
		{Hash: "c1", Parents: []string{"other", "base"}},
		{Hash: "base"},
	}, domain.FilterOptions{})
	c := NewController(store, false)
	c.Handle(JumpBottom)

	c.Handle(JumpChild)

	assert.Equal(t, 1, c.State().Index, "earliest child in store order wins")
}

func TestController_JumpParentUsesFirstParent(t *testing.T) {
	store := graph.NewStore([]domain.Commit{
		{Hash: "merge", Parents: []string{"left", "right"}},
		{Hash: "right"},
		{Hash: "left"},
	}, domain.FilterOptions{})
	c := NewController(store, false)

	c.Handle(JumpParent)

	assert.Equal(t, 2, c.State().Index)
}

func TestController_Toggles(t *testing.T) {
	c := NewController(linearStore(3), true)
	c.Handle(MoveDown)

	c.Handle(ToggleHelp)
	assert.True(t, c.State().ShowHelp)
	c.Handle(ToggleHelp)
	assert.False(t, c.State().ShowHelp)

	c.Handle(ToggleGlyphs)
	assert.False(t, c.State().Unicode)

	c.Handle(RequestQuit)
	assert.True(t, c.State().QuitRequested)
	assert.Equal(t, 1, c.State().Index, "toggles never move the selection")
}

func TestController_CommandRequests(t *testing.T) {
	tests := []struct {
		event    Event
		op       domain.Operation
		name     string
		expected bool
	}{
		{Checkout, domain.OpCheckout, "", false},
		{Reset, domain.OpReset, "", false},
		{CherryPick, domain.OpCherryPick, "", false},
		{Revert, domain.OpRevert, "", false},
		{CreateBranch, domain.OpCreateBranch, "branch-h01", false},
		{CreateTag, domain.OpCreateTag, "tag-h01", false},
		{OpenDetails, domain.OpNone, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			c := NewController(linearStore(3), false)
			c.Handle(MoveDown)
			before := c.State()

			req, ok := c.Handle(tt.event)

			require.True(t, ok)
			assert.Equal(t, tt.expected, req.Details)
			assert.Equal(t, tt.op, req.Intent.Op)
			assert.Equal(t, "hash01", req.Intent.Hash)
			assert.Equal(t, "h01", req.Intent.ShortHash)
			assert.Equal(t, tt.name, req.Intent.Name)
			assert.Equal(t, before, c.State(), "commands do not change selection")
		})
	}
}

func TestController_Viewport(t *testing.T) {
	c := NewController(linearStore(30), false)
	c.SetHeight(10)

	c.Handle(PageDown)
	assert.Equal(t, 1, c.State().ViewportOffset)
	c.Handle(MoveUp)
	assert.Equal(t, 1, c.State().ViewportOffset)
	c.Handle(MoveDown)
	c.Handle(MoveDown)
	assert.Equal(t, 2, c.State().ViewportOffset)
	c.Handle(JumpBottom)
	assert.Equal(t, 20, c.State().ViewportOffset)
	c.Handle(JumpTop)
	assert.Equal(t, 0, c.State().ViewportOffset)

	c.Handle(JumpBottom)
	c.SetHeight(40)
	assert.Equal(t, 0, c.State().ViewportOffset, "offset clamps when everything fits")
}

func TestController_SetStoreKeepsSelectedHash(t *testing.T) {
	c := NewController(linearStore(10), false)
	c.Handle(JumpBottom)

	// Same commits with one extra commit on top
	commits := []domain.Commit{{Hash: "new"}}
	for i := 0; i < 10; i++ {
		commit, _ := linearStore(10).At(i)
		commits = append(commits, commit)
	}
	c.SetStore(graph.NewStore(commits, domain.FilterOptions{}))

	assert.Equal(t, 10, c.State().Index)
	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "hash09", selected.Hash)
}

func TestController_SetStoreFallsBackToTop(t *testing.T) {
	c := NewController(linearStore(5), false)
	c.Handle(JumpBottom)

	c.SetStore(graph.NewStore([]domain.Commit{{Hash: "other"}}, domain.FilterOptions{}))
	assert.Equal(t, 0, c.State().Index)

	c.SetStore(graph.NewStore(nil, domain.FilterOptions{}))
	assert.Equal(t, -1, c.State().Index)

	c.SetStore(linearStore(2))
	assert.Equal(t, 0, c.State().Index)
}

func TestEndToEnd_LinearLogJumpParent(t *testing.T) {
	// Oldest first, so each row's parent is the row above it
	text := "*|aaa111|aaa|Ann|ann@example.com|2024-01-01 10:00:00 +0000|first|\n" +
		"*|bbb222|bbb|Ann|ann@example.com|2024-01-02 10:00:00 +0000|second|aaa111\n" +
		"*|ccc333|ccc|Ann|ann@example.com|2024-01-03 10:00:00 +0000|third|bbb222\n"
	refs := []domain.Reference{{Name: "main", Hash: "ccc333", Kind: domain.RefKindBranch}}

	store, err := graph.Build(text, refs, domain.FilterOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())

	c := NewController(store, false)
	c.Handle(MoveDown)
	c.Handle(MoveDown)
	c.Handle(JumpParent)

	assert.Equal(t, 1, c.State().Index)
	selected, _ := c.Selected()
	assert.Equal(t, "bbb222", selected.Hash)
}

func TestDefaultRefName(t *testing.T) {
	assert.Equal(t, "branch-abc", DefaultRefName(domain.OpCreateBranch, "abc"))
	assert.Equal(t, "tag-abc", DefaultRefName(domain.OpCreateTag, "abc"))
	assert.Empty(t, DefaultRefName(domain.OpReset, "abc"))
}
