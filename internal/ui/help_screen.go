package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/gittree/internal/render"
	"github.com/renato0307/gittree/internal/theme"
)

// HelpScreen displays keyboard shortcuts and the glyph legend in a scrollable viewport
type HelpScreen struct {
	content     string
	initialized bool
	viewport    viewport.Model
}

func renderShortcut(keys, description string) string {
	return theme.HelpKeyStyle.Render(keys) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the help text from the active key bindings
func buildHelpContent(keys *KeyMap, unicode bool) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Navigation") + "\n")
	for _, binding := range []key.Binding{
		keys.Navigation.Up, keys.Navigation.Down, keys.Navigation.PageUp, keys.Navigation.PageDown,
		keys.Navigation.Top, keys.Navigation.Bottom, keys.Navigation.Parent, keys.Navigation.Child,
		keys.Navigation.Filter,
	} {
		b.WriteString(renderBinding(binding))
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Commit") + "\n")
	for _, binding := range []key.Binding{
		keys.Commit.Details, keys.Commit.Checkout, keys.Commit.Reset, keys.Commit.CherryPick,
		keys.Commit.Revert, keys.Commit.Branch, keys.Commit.Tag,
	} {
		b.WriteString(renderBinding(binding))
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	for _, binding := range []key.Binding{
		keys.Application.Glyphs, keys.Application.Help, keys.Application.Quit, keys.Application.ForceQuit,
	} {
		b.WriteString(renderBinding(binding))
	}

	glyphs := render.Glyphs(unicode)
	b.WriteString("\n" + theme.HelpGroupStyle.Render("Graph") + "\n")
	b.WriteString(renderShortcut(glyphs.Vertical, "lane continues"))
	b.WriteString(renderShortcut(glyphs.Horizontal, "lane crosses"))
	b.WriteString(renderShortcut(glyphs.Corner, "lane joins or forks"))
	b.WriteString(renderShortcut(glyphs.Merge, "commit"))
	b.WriteString(renderShortcut(glyphs.Empty, "commit without graph"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, unicode bool) *HelpScreen {
	h := &HelpScreen{
		content:  buildHelpContent(keys, unicode),
		viewport: viewport.New(0, 0),
	}
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return h
}

// SetSize sizes the viewport, leaving room for the header and footer
func (h *HelpScreen) SetSize(width, height int) {
	h.viewport.Width = width
	h.viewport.Height = max(height-4, 5)
	h.viewport.SetContent(h.content)
	h.initialized = true
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		h.SetSize(size.Width, size.Height)
		return h, nil
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n" + footer
}
