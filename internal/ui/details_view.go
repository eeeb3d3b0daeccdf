package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/theme"
)

const defaultPager = "less -R"

// DetailsView shows one commit's metadata, message and changed files
type DetailsView struct {
	Completed   bool
	content     string
	initialized bool
	viewport    viewport.Model
}

// NewDetailsView creates a details view for already rendered content
func NewDetailsView(content string) *DetailsView {
	d := &DetailsView{
		content:  content,
		viewport: viewport.New(0, 0),
	}
	d.viewport.KeyMap.Up.SetKeys("up", "k")
	d.viewport.KeyMap.Down.SetKeys("down", "j")
	return d
}

// SetSize sizes the viewport, leaving room for the header and footer
func (d *DetailsView) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = max(height-6, 5)
	d.viewport.SetContent(d.content)
	d.initialized = true
}

func (d *DetailsView) Init() tea.Cmd {
	return nil
}

func (d *DetailsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter", "ctrl+c":
			d.Completed = true
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d *DetailsView) View() string {
	if !d.initialized {
		return "Loading details..."
	}
	footer := theme.HelpStyle.Render("Press esc, q or enter to close • ↑↓/jk/PgUp/PgDn to scroll")
	return d.viewport.View() + "\n" + footer
}

// formatDetails renders commit details as text. When styled is false the
// output carries no escape sequences, which is what pagers and files get.
func formatDetails(d *domain.CommitDetails, refs []string, layout string, loc *time.Location, styled bool) string {
	label := func(s string) string {
		if styled {
			return theme.DetailsLabelStyle.Render(s)
		}
		return fmt.Sprintf("%-10s", s)
	}
	if loc == nil {
		loc = time.UTC
	}

	var b strings.Builder
	b.WriteString(label("Commit") + d.Hash + "\n")
	if len(refs) > 0 {
		b.WriteString(label("Refs") + strings.Join(refs, ", ") + "\n")
	}
	b.WriteString(label("Author") + fmt.Sprintf("%s <%s>", d.Author, d.Email) + "\n")
	b.WriteString(label("Date") + d.Date.In(loc).Format(layout) + "\n")
	if len(d.Parents) > 0 {
		b.WriteString(label("Parents") + strings.Join(d.Parents, " ") + "\n")
	}

	b.WriteString("\n")
	for _, line := range strings.Split(d.Message, "\n") {
		b.WriteString("    " + line + "\n")
	}

	if len(d.Files) == 0 {
		return b.String()
	}

	b.WriteString("\n")
	nameWidth := 0
	for _, f := range d.Files {
		nameWidth = max(nameWidth, len(f))
	}
	for _, f := range d.Files {
		stat := d.Stats[f]
		adds := fmt.Sprintf("+%d", stat.Additions)
		dels := fmt.Sprintf("-%d", stat.Deletions)
		if styled {
			adds = theme.AdditionsStyle.Render(adds)
			dels = theme.DeletionsStyle.Render(dels)
		}
		b.WriteString(fmt.Sprintf(" %-*s | %s %s\n", nameWidth, f, adds, dels))
	}

	additions, deletions := d.TotalChanges()
	b.WriteString(fmt.Sprintf(" %d files changed, %d insertions(+), %d deletions(-)\n",
		len(d.Files), additions, deletions))

	return b.String()
}

// pagerCommand builds the pager invocation from $PAGER
func pagerCommand(path string) (*exec.Cmd, error) {
	pager := os.Getenv("PAGER")
	if strings.TrimSpace(pager) == "" {
		pager = defaultPager
	}

	args, err := shlex.Split(pager, true)
	if err != nil {
		return nil, fmt.Errorf("invalid PAGER %q: %w", pager, err)
	}
	if len(args) == 0 {
		args = []string{"less", "-R"}
	}

	return exec.Command(args[0], append(args[1:], path)...), nil
}

// openPager writes text to a temporary file and hands the terminal to the pager
func openPager(text string) tea.Cmd {
	f, err := os.CreateTemp("", "gittree-details-*.txt")
	if err != nil {
		return func() tea.Msg { return pagerClosedMsg{err: err} }
	}
	path := f.Name()

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(path)
		return func() tea.Msg { return pagerClosedMsg{err: err} }
	}
	f.Close()

	cmd, err := pagerCommand(path)
	if err != nil {
		os.Remove(path)
		return func() tea.Msg { return pagerClosedMsg{err: err} }
	}

	logging.Logger.Debug("Opening pager", "args", cmd.Args)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		os.Remove(path)
		return pagerClosedMsg{err: err}
	})
}
