package ui

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/gittree/internal/config"
	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/graph"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/navigation"
	"github.com/renato0307/gittree/internal/render"
	"github.com/renato0307/gittree/internal/services"
	"github.com/renato0307/gittree/internal/theme"
)

const (
	headerLines        = 2
	footerLines        = 2
	statusMessageDelay = 5 * time.Second
)

// Paging modes for the details view
const (
	PagingAlways = "always"
	PagingAuto   = "auto"
	PagingNever  = "never"
)

type uiState int

const (
	stateGraph uiState = iota
	stateConfirming
	stateDetails
	stateFiltering
	stateNaming
)

// History is what the model needs from the history service
type History interface {
	Details(ctx context.Context, hash string) (*domain.CommitDetails, error)
	Execute(ctx context.Context, intent domain.Intent) error
	Load(ctx context.Context, filter domain.FilterOptions) (*services.Snapshot, error)
}

// Verify interface compliance at compile time
var _ History = (*services.HistoryService)(nil)

// ModelConfig holds everything needed to build a Model
type ModelConfig struct {
	AssumeYes        bool // skip confirmations and name prompts
	ConfirmDangerous bool
	DateFormat       string
	DevMode          bool
	ErrorClearDelay  time.Duration
	History          History
	Keys             config.KeyBindingsConfig
	Location         *time.Location
	Paging           string
	Snapshot         *services.Snapshot // initial history, may be nil
	Unicode          bool
}

// Model is the interactive commit graph viewer
type Model struct {
	busy          bool
	cfg           ModelConfig
	controller    *navigation.Controller
	dialog        *Dialog // active form or details dialog, nil in stateGraph
	errorManager  *ErrorManager
	filter        domain.FilterOptions
	height        int
	help          help.Model
	helpScreen    *HelpScreen
	keys          KeyMap
	now           func() time.Time
	refs          []domain.Reference
	spinner       spinner.Model
	state         uiState
	status        *domain.RepoStatus
	statusMessage string
	width         int
}

// NewModel creates the viewer model from an initial snapshot
func NewModel(cfg ModelConfig) *Model {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Paging == "" {
		cfg.Paging = PagingAuto
	}

	m := &Model{
		cfg:          cfg,
		errorManager: NewErrorManager(cfg.ErrorClearDelay),
		help:         help.New(),
		keys:         NewKeyMap(cfg.Keys),
		now:          time.Now,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.StatusMessageStyle)),
		state:        stateGraph,
	}

	store := graph.NewStore(nil, domain.FilterOptions{})
	if cfg.Snapshot != nil {
		store = cfg.Snapshot.Store
		m.filter = store.Filter()
		m.refs = cfg.Snapshot.Refs
		m.status = cfg.Snapshot.Status
	}
	m.controller = navigation.NewController(store, cfg.Unicode)

	return m
}

// Controller exposes the selection state machine
func (m *Model) Controller() *navigation.Controller {
	return m.controller
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.controller.SetHeight(m.rowsHeight())
		if m.helpScreen != nil {
			m.helpScreen.SetSize(msg.Width, msg.Height)
		}
		if m.dialog != nil {
			_, cmd := m.dialog.Update(msg)
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case historyLoadedMsg:
		m.busy = false
		if msg.err != nil {
			logging.Logger.Error("Failed to load history", "error", msg.err)
			return m, m.errorManager.SetError(msg.err)
		}
		m.applySnapshot(msg.snapshot, msg.filter)
		return m, nil

	case operationDoneMsg:
		if msg.err != nil {
			m.busy = false
			logging.Logger.Error("Operation failed", "op", msg.intent.Op.String(), "error", msg.err)
			return m, m.errorManager.SetError(msg.err)
		}
		m.statusMessage = operationStatus(msg.intent)
		// refs and HEAD changed, rebuild while still busy
		return m, tea.Batch(m.loadHistory(m.filter), m.clearStatusAfterDelay())

	case detailsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.errorManager.SetError(msg.err)
		}
		return m, m.showDetails(msg.details)

	case pagerClosedMsg:
		if msg.err != nil {
			return m, m.errorManager.SetError(msg.err)
		}
		return m, nil
	}

	switch m.state {
	case stateGraph:
		return m.updateGraph(msg)
	case stateConfirming, stateNaming:
		return m.updateOperationForm(msg)
	case stateDetails:
		return m.updateDetails(msg)
	case stateFiltering:
		return m.updateFilter(msg)
	}
	return m, nil
}

func (m *Model) updateGraph(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Application.ForceQuit) {
		return m, tea.Quit
	}
	// Nothing interleaves with an in-flight command
	if m.busy {
		return m, nil
	}

	if m.controller.State().ShowHelp {
		if key.Matches(keyMsg, m.keys.Application.Help, m.keys.Application.Quit) {
			m.controller.Handle(navigation.ToggleHelp)
			m.helpScreen = nil
			return m, nil
		}
		if m.helpScreen == nil {
			return m, nil
		}
		_, cmd := m.helpScreen.Update(msg)
		return m, cmd
	}

	if key.Matches(keyMsg, m.keys.Navigation.Filter) {
		return m.openFilter()
	}

	event, known := m.eventFor(keyMsg)
	if !known {
		return m, nil
	}

	req, hasRequest := m.controller.Handle(event)
	state := m.controller.State()

	if state.QuitRequested {
		return m, tea.Quit
	}
	if state.ShowHelp {
		m.helpScreen = NewHelpScreen(&m.keys, state.Unicode)
		m.helpScreen.SetSize(m.width, m.height)
		return m, nil
	}
	if !hasRequest {
		return m, nil
	}

	if req.Details {
		return m, m.loadDetails(req.Intent.Hash)
	}
	return m.startOperation(req.Intent)
}

// eventFor maps a key press to a controller event
func (m *Model) eventFor(msg tea.KeyMsg) (navigation.Event, bool) {
	bindings := []struct {
		binding key.Binding
		event   navigation.Event
	}{
		{m.keys.Navigation.Down, navigation.MoveDown},
		{m.keys.Navigation.Up, navigation.MoveUp},
		{m.keys.Navigation.PageDown, navigation.PageDown},
		{m.keys.Navigation.PageUp, navigation.PageUp},
		{m.keys.Navigation.Top, navigation.JumpTop},
		{m.keys.Navigation.Bottom, navigation.JumpBottom},
		{m.keys.Navigation.Parent, navigation.JumpParent},
		{m.keys.Navigation.Child, navigation.JumpChild},
		{m.keys.Application.Help, navigation.ToggleHelp},
		{m.keys.Application.Glyphs, navigation.ToggleGlyphs},
		{m.keys.Application.Quit, navigation.RequestQuit},
		{m.keys.Commit.Details, navigation.OpenDetails},
		{m.keys.Commit.Checkout, navigation.Checkout},
		{m.keys.Commit.Reset, navigation.Reset},
		{m.keys.Commit.CherryPick, navigation.CherryPick},
		{m.keys.Commit.Revert, navigation.Revert},
		{m.keys.Commit.Branch, navigation.CreateBranch},
		{m.keys.Commit.Tag, navigation.CreateTag},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.event, true
		}
	}
	return 0, false
}

// startOperation prompts for a name or a confirmation when needed, then executes
func (m *Model) startOperation(intent domain.Intent) (tea.Model, tea.Cmd) {
	if m.cfg.AssumeYes {
		return m, m.execute(intent)
	}

	switch {
	case intent.Op.NeedsName():
		title := "Create Branch"
		if intent.Op == domain.OpCreateTag {
			title = "Create Tag"
		}
		m.dialog = NewDialog(title, NewRefNameForm(intent), m.cfg.DevMode)
		m.state = stateNaming
		return m, m.dialog.Init()

	case intent.Op.IsDangerous() && m.cfg.ConfirmDangerous:
		m.dialog = NewDialog("Confirm", NewConfirmForm(intent), m.cfg.DevMode)
		m.state = stateConfirming
		return m, m.dialog.Init()
	}

	return m, m.execute(intent)
}

func (m *Model) updateOperationForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)

	form, ok := m.dialog.Content().(*OperationForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.dialog = nil
	m.state = stateGraph
	if form.Cancelled {
		logging.Logger.Debug("Operation cancelled", "op", form.Intent().Op.String())
		return m, nil
	}
	return m, m.execute(form.Intent())
}

func (m *Model) openFilter() (tea.Model, tea.Cmd) {
	m.dialog = NewDialog("Filter History", NewFilterForm(m.filter, m.now), m.cfg.DevMode)
	m.state = stateFiltering
	return m, m.dialog.Init()
}

func (m *Model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)

	form, ok := m.dialog.Content().(*FilterForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.dialog = nil
	m.state = stateGraph
	if form.Cancelled {
		return m, nil
	}

	filter := form.Result()
	logging.Logger.Info("Applying filter", "filter", describeFilter(filter))
	return m, m.loadHistory(filter)
}

func (m *Model) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)

	if view, ok := m.dialog.Content().(*DetailsView); ok && view.Completed {
		m.dialog = nil
		m.state = stateGraph
		return m, nil
	}
	return m, cmd
}

// showDetails opens the details in the pager or in a dialog depending on paging
func (m *Model) showDetails(details *domain.CommitDetails) tea.Cmd {
	var refs []string
	if commit, ok := m.controller.Selected(); ok && commit.Hash == details.Hash {
		refs = commit.Refs
	}

	if m.usePager() {
		return openPager(formatDetails(details, refs, m.dateFormat(), m.cfg.Location, false))
	}

	view := NewDetailsView(formatDetails(details, refs, m.dateFormat(), m.cfg.Location, true))
	view.SetSize(m.width, m.height)
	m.dialog = NewDialog("Commit "+shortHash(details.Hash), view, m.cfg.DevMode)
	m.state = stateDetails
	return m.dialog.Init()
}

func (m *Model) usePager() bool {
	switch m.cfg.Paging {
	case PagingAlways:
		return true
	case PagingAuto:
		return strings.TrimSpace(os.Getenv("PAGER")) != ""
	default:
		return false
	}
}

// applySnapshot swaps in a rebuilt store, keeping the selection on the same hash
func (m *Model) applySnapshot(snapshot *services.Snapshot, filter domain.FilterOptions) {
	m.controller.SetStore(snapshot.Store)
	m.filter = filter
	m.refs = snapshot.Refs
	if snapshot.Status != nil {
		m.status = snapshot.Status
	}
}

func (m *Model) execute(intent domain.Intent) tea.Cmd {
	m.busy = true
	history := m.cfg.History
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		err := history.Execute(context.Background(), intent)
		return operationDoneMsg{err: err, intent: intent}
	})
}

func (m *Model) loadHistory(filter domain.FilterOptions) tea.Cmd {
	m.busy = true
	history := m.cfg.History
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		snapshot, err := history.Load(context.Background(), filter)
		return historyLoadedMsg{err: err, filter: filter, snapshot: snapshot}
	})
}

func (m *Model) loadDetails(hash string) tea.Cmd {
	m.busy = true
	history := m.cfg.History
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		details, err := history.Details(context.Background(), hash)
		return detailsLoadedMsg{details: details, err: err}
	})
}

func (m *Model) clearStatusAfterDelay() tea.Cmd {
	return tea.Tick(statusMessageDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) rowsHeight() int {
	return max(m.height-headerLines-footerLines, 1)
}

func (m *Model) dateFormat() string {
	if m.cfg.DateFormat == "" {
		return render.DefaultDateFormat
	}
	return m.cfg.DateFormat
}

func (m *Model) View() string {
	if m.state != stateGraph && m.dialog != nil {
		return m.dialog.View()
	}

	state := m.controller.State()
	frame := render.Project(m.controller.Store(), state, render.Options{
		DateFormat: m.dateFormat(),
		Height:     m.rowsHeight(),
		Location:   m.cfg.Location,
	})

	var body string
	switch frame.Mode {
	case render.ModeHelp:
		if m.helpScreen != nil {
			return renderHeader(m.cfg.DevMode, "Help") + m.helpScreen.View()
		}
	case render.ModeEmpty:
		body = theme.HelpStyle.Render("No commits match the current filter.")
	case render.ModeRows:
		body = renderRows(frame, newRefStyler(m.refs, m.status), m.width)
	}

	header := renderStatusLine(m.status, m.filter)
	if m.busy {
		header += " " + m.spinner.View()
	}

	view := header + "\n\n" + body + "\n"

	// Footer: error, then status message, then short help
	switch {
	case m.errorManager.HasError():
		view += theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	case m.statusMessage != "":
		view += theme.StatusMessageStyle.Render(m.statusMessage) + "\n "
	default:
		view += m.help.View(m.keys) + "\n "
	}
	return view
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
