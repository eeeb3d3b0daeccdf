package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/graph"
	"github.com/renato0307/gittree/internal/services"
)

const testLog = "* |h3|c3|Carol|carol@example.com|2024-01-03T00:00:00Z|third|h2\n" +
	"* |h2|c2|Bob|bob@example.com|2024-01-02T00:00:00Z|second|h1\n" +
	"* |h1|c1|Alice|alice@example.com|2024-01-01T00:00:00Z|first|\n"

type fakeHistory struct {
	mu         sync.Mutex
	details    *domain.CommitDetails
	executeErr error
	executed   []domain.Intent
	snapshot   *services.Snapshot
}

func (f *fakeHistory) Details(ctx context.Context, hash string) (*domain.CommitDetails, error) {
	return f.details, nil
}

func (f *fakeHistory) Execute(ctx context.Context, intent domain.Intent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.executed = append(f.executed, intent)
	return f.executeErr
}

func (f *fakeHistory) Load(ctx context.Context, filter domain.FilterOptions) (*services.Snapshot, error) {
	return f.snapshot, nil
}

func testSnapshot(t *testing.T, text string) *services.Snapshot {
	t.Helper()
	refs := []domain.Reference{{Hash: "h3", Kind: domain.RefKindBranch, Name: "main"}}
	store, err := graph.Build(text, refs, domain.FilterOptions{})
	require.NoError(t, err)
	return &services.Snapshot{
		Refs:   refs,
		Status: &domain.RepoStatus{Branch: "main", Head: "h3"},
		Store:  store,
	}
}

func newTestModel(t *testing.T, history *fakeHistory, mutate func(*ModelConfig)) *Model {
	t.Helper()
	cfg := ModelConfig{
		ConfirmDangerous: true,
		ErrorClearDelay:  time.Second,
		History:          history,
		Location:         time.UTC,
		Paging:           PagingNever,
		Snapshot:         testSnapshot(t, testLog),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	m := NewModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

// collect runs cmd and any batched commands, returning the produced messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed
		}
	}
	var zero T
	t.Fatalf("message %T not produced", zero)
	return zero
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t, &fakeHistory{}, nil)

	press(m, "j", "j")
	assert.Equal(t, 2, m.Controller().State().Index)

	press(m, "l")
	assert.Equal(t, 1, m.Controller().State().Index, "child of h1 is h2")

	press(m, "g")
	assert.Equal(t, 0, m.Controller().State().Index)

	press(m, "h")
	assert.Equal(t, 1, m.Controller().State().Index, "first parent of h3 is h2")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t, &fakeHistory{}, nil)
			cmd := press(m, k)
			require.NotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok)
		})
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, &fakeHistory{}, nil)

	press(m, "?")
	assert.True(t, m.Controller().State().ShowHelp)
	assert.Contains(t, m.View(), "jump to first parent")

	// esc closes help instead of quitting
	cmd := press(m, "esc")
	assert.Nil(t, cmd)
	assert.False(t, m.Controller().State().ShowHelp)
	assert.Contains(t, m.View(), "third")
}

func TestModel_ViewShowsRowsAndStatus(t *testing.T) {
	m := newTestModel(t, &fakeHistory{}, nil)

	view := m.View()
	assert.Contains(t, view, "main")
	assert.Contains(t, view, "c3")
	assert.Contains(t, view, "second")
	assert.Contains(t, view, "Alice")
}

func TestModel_EmptyStore(t *testing.T) {
	m := newTestModel(t, &fakeHistory{}, func(cfg *ModelConfig) {
		cfg.Snapshot = nil
	})

	assert.False(t, m.Controller().State().HasSelection())
	assert.Contains(t, m.View(), "No commits")
	press(m, "j", "c")
	assert.Equal(t, stateGraph, m.state)
}

func TestModel_CheckoutRequiresConfirmation(t *testing.T) {
	history := &fakeHistory{}
	m := newTestModel(t, history, nil)

	press(m, "c")
	assert.Equal(t, stateConfirming, m.state)

	press(m, "esc")
	assert.Equal(t, stateGraph, m.state)
	assert.Empty(t, history.executed)
}

func TestModel_CheckoutWithoutConfirmation(t *testing.T) {
	history := &fakeHistory{snapshot: testSnapshot(t, testLog)}
	m := newTestModel(t, history, func(cfg *ModelConfig) {
		cfg.ConfirmDangerous = false
	})

	press(m, "j")
	cmd := press(m, "c")
	require.True(t, m.busy)

	done := findMsg[operationDoneMsg](t, collect(cmd))
	require.NoError(t, done.err)
	require.Len(t, history.executed, 1)
	assert.Equal(t, domain.Intent{Hash: "h2", Op: domain.OpCheckout, ShortHash: "c2"}, history.executed[0])

	m.Update(done)
	assert.Equal(t, "Checked out c2", m.statusMessage)
	assert.True(t, m.busy, "store rebuild still in flight")
}

func TestModel_BusyIgnoresInput(t *testing.T) {
	m := newTestModel(t, &fakeHistory{}, func(cfg *ModelConfig) {
		cfg.AssumeYes = true
	})

	press(m, "p")
	require.True(t, m.busy)

	press(m, "j", "j")
	assert.Equal(t, 0, m.Controller().State().Index)
}

func TestModel_AssumeYesCreatesBranchWithDefaultName(t *testing.T) {
	history := &fakeHistory{}
	m := newTestModel(t, history, func(cfg *ModelConfig) {
		cfg.AssumeYes = true
	})

	collect(press(m, "b"))

	require.Len(t, history.executed, 1)
	assert.Equal(t, domain.OpCreateBranch, history.executed[0].Op)
	assert.Equal(t, "branch-c3", history.executed[0].Name)
}

func TestModel_TagPromptsForName(t *testing.T) {
	history := &fakeHistory{}
	m := newTestModel(t, history, nil)

	press(m, "t")
	require.Equal(t, stateNaming, m.state)

	form, ok := m.dialog.Content().(*OperationForm)
	require.True(t, ok)
	assert.Equal(t, "tag-c3", form.Intent().Name)
}

func TestModel_OperationErrorShown(t *testing.T) {
	history := &fakeHistory{executeErr: &domain.CommandError{
		Args:   []string{"revert", "h3"},
		Err:    errors.New("exit status 1"),
		Output: "error: could not revert",
	}}
	m := newTestModel(t, history, nil)

	done := findMsg[operationDoneMsg](t, collect(press(m, "r")))
	m.Update(done)

	assert.False(t, m.busy)
	require.True(t, m.errorManager.HasError())
	assert.Contains(t, m.View(), "could not revert")

	m.Update(clearErrorMsg{})
	assert.False(t, m.errorManager.HasError())
}

func TestModel_ReloadKeepsSelectionByHash(t *testing.T) {
	m := newTestModel(t, &fakeHistory{}, nil)
	press(m, "j")
	require.Equal(t, 1, m.Controller().State().Index)

	newer := "* |h4|c4|Dan|dan@example.com|2024-01-04T00:00:00Z|fourth|h3\n" + testLog
	filter := domain.FilterOptions{Author: "x"}
	m.Update(historyLoadedMsg{filter: filter, snapshot: testSnapshot(t, newer)})

	assert.Equal(t, 2, m.Controller().State().Index)
	selected, ok := m.Controller().Selected()
	require.True(t, ok)
	assert.Equal(t, "h2", selected.Hash)
	assert.Equal(t, filter, m.filter)
}

func TestModel_FilterFormCancel(t *testing.T) {
	m := newTestModel(t, &fakeHistory{}, nil)

	press(m, "/")
	require.Equal(t, stateFiltering, m.state)

	press(m, "esc")
	assert.Equal(t, stateGraph, m.state)
	assert.False(t, m.busy)
}

func TestModel_DetailsDialog(t *testing.T) {
	history := &fakeHistory{details: &domain.CommitDetails{
		Author:  "Carol",
		Date:    time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Email:   "carol@example.com",
		Files:   []string{"main.go"},
		Hash:    "h3",
		Message: "third",
		Parents: []string{"h2"},
		Stats:   map[string]domain.FileStat{"main.go": {Additions: 4, Deletions: 2}},
	}}
	m := newTestModel(t, history, nil)

	loaded := findMsg[detailsLoadedMsg](t, collect(press(m, "enter")))
	m.Update(loaded)

	require.Equal(t, stateDetails, m.state)
	view := m.View()
	assert.Contains(t, view, "carol@example.com")
	assert.Contains(t, view, "main.go")

	press(m, "q")
	assert.Equal(t, stateGraph, m.state)
}
