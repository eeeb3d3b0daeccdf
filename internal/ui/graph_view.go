package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/render"
	"github.com/renato0307/gittree/internal/theme"
)

// refStyler picks the style of a reference annotation
type refStyler struct {
	head  string
	kinds map[string]domain.RefKind
}

func newRefStyler(refs []domain.Reference, status *domain.RepoStatus) refStyler {
	s := refStyler{kinds: make(map[string]domain.RefKind, len(refs))}
	for _, r := range refs {
		s.kinds[r.Name] = r.Kind
	}
	if status != nil {
		s.head = status.Branch
	}
	return s
}

func (s refStyler) style(name string) lipgloss.Style {
	if name == s.head {
		return theme.HeadRefStyle
	}
	switch s.kinds[name] {
	case domain.RefKindTag:
		return theme.TagRefStyle
	case domain.RefKindRemoteBranch:
		return theme.RemoteRefStyle
	default:
		return theme.RefStyle
	}
}

// renderLine styles one projected row and clips it to width
func renderLine(line render.Line, refs refStyler, width int) string {
	var out string
	if line.Selected {
		out = theme.SelectedRowStyle.Render(line.Text())
	} else {
		parts := []string{
			theme.LaneStyle(line.Lane).Render(line.Graph),
			theme.HashStyle.Render(line.ShortHash),
			theme.AuthorStyle.Render(line.Author),
			theme.DateStyle.Render(line.Date),
			theme.MessageStyle.Render(line.Message),
		}
		out = strings.Join(parts, " ")
		if len(line.Refs) > 0 {
			names := make([]string, len(line.Refs))
			for i, name := range line.Refs {
				names[i] = refs.style(name).Render(name)
			}
			out += " (" + strings.Join(names, ", ") + ")"
		}
	}

	if width > 0 {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}

// renderRows renders a rows frame, one commit per line
func renderRows(frame render.Frame, refs refStyler, width int) string {
	lines := make([]string, len(frame.Lines))
	for i, line := range frame.Lines {
		lines[i] = renderLine(line, refs, width)
	}
	return strings.Join(lines, "\n")
}

// renderStatusLine renders the branch, dirty marker and active filter
func renderStatusLine(status *domain.RepoStatus, filter domain.FilterOptions) string {
	out := theme.TitleStyle.Render("gittree")

	if status != nil {
		switch {
		case status.Detached:
			short := status.Head
			if len(short) > 7 {
				short = short[:7]
			}
			out += " " + theme.DetachedStyle.Render("HEAD detached at "+short)
		case status.Branch != "":
			out += " " + theme.BranchStyle.Render(status.Branch)
		}
		if status.Dirty {
			out += " " + theme.DirtyStyle.Render("*modified")
		}
	}

	if desc := describeFilter(filter); desc != "" {
		out += " " + theme.FilterStyle.Render("["+desc+"]")
	}
	return out
}

// describeFilter summarises the non-empty filter fields
func describeFilter(f domain.FilterOptions) string {
	if f.IsEmpty() {
		return ""
	}

	var parts []string
	if f.Range != "" {
		parts = append(parts, "range="+f.Range)
	}
	if f.Author != "" {
		parts = append(parts, "author="+f.Author)
	}
	if f.Path != "" {
		parts = append(parts, "path="+f.Path)
	}
	if f.Since != nil {
		parts = append(parts, "since="+f.Since.Format("2006-01-02"))
	}
	if f.Until != nil {
		parts = append(parts, "until="+f.Until.Format("2006-01-02"))
	}
	if f.MaxCommits > 0 {
		parts = append(parts, fmt.Sprintf("max=%d", f.MaxCommits))
	}
	return strings.Join(parts, " ")
}

// operationStatus describes a finished operation for the footer
func operationStatus(intent domain.Intent) string {
	switch intent.Op {
	case domain.OpCheckout:
		return "Checked out " + intent.ShortHash
	case domain.OpReset:
		return "Reset to " + intent.ShortHash
	case domain.OpCherryPick:
		return "Cherry-picked " + intent.ShortHash
	case domain.OpRevert:
		return "Reverted " + intent.ShortHash
	case domain.OpCreateBranch:
		return fmt.Sprintf("Created branch %s at %s", strings.TrimSpace(intent.Name), intent.ShortHash)
	case domain.OpCreateTag:
		return fmt.Sprintf("Created tag %s at %s", strings.TrimSpace(intent.Name), intent.ShortHash)
	default:
		return ""
	}
}
