package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Status header styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorBranch).
			Bold(true)

	DetachedStyle = lipgloss.NewStyle().
			Foreground(ColorHash).
			Bold(true)

	DirtyStyle = lipgloss.NewStyle().
			Foreground(ColorDirty)

	FilterStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)
)

// Commit row styles
var (
	AuthorStyle = lipgloss.NewStyle().
			Foreground(ColorAuthor)

	DateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HashStyle = lipgloss.NewStyle().
			Foreground(ColorHash)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	RefStyle = lipgloss.NewStyle().
			Foreground(ColorBranch).
			Bold(true)

	RemoteRefStyle = lipgloss.NewStyle().
			Foreground(ColorRemote).
			Bold(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorSelected).
				Bold(true)

	TagRefStyle = lipgloss.NewStyle().
			Foreground(ColorTag).
			Bold(true)
)

// Graph styles, replaced by Configure
var (
	HeadRefStyle = lipgloss.NewStyle().
			Foreground(ParseColor(DefaultHead)).
			Bold(true)

	laneStyles = [2]lipgloss.Style{
		lipgloss.NewStyle().Foreground(ParseColor(DefaultGraph1)),
		lipgloss.NewStyle().Foreground(ParseColor(DefaultGraph2)),
	}
)

// Git diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Details view styles
var (
	DetailsLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Width(10)

	DetailsValueStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusMessageStyle renders operation results
var StatusMessageStyle = lipgloss.NewStyle().
	Foreground(ColorStatus)

// Options are the user facing style settings
type Options struct {
	Graph1  string
	Graph2  string
	Head    string
	NoColor bool
	Style   string // auto, light or dark
}

// Configure applies the user style settings to the package styles.
// It must be called before the first render.
func Configure(opts Options) {
	switch opts.Style {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	if opts.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	graph1, graph2, head := opts.Graph1, opts.Graph2, opts.Head
	if graph1 == "" {
		graph1 = DefaultGraph1
	}
	if graph2 == "" {
		graph2 = DefaultGraph2
	}
	if head == "" {
		head = DefaultHead
	}

	laneStyles[0] = lipgloss.NewStyle().Foreground(ParseColor(graph1))
	laneStyles[1] = lipgloss.NewStyle().Foreground(ParseColor(graph2))
	HeadRefStyle = lipgloss.NewStyle().Foreground(ParseColor(head)).Bold(true)
}

// LaneStyle alternates the two graph colors by lane parity
func LaneStyle(lane int) lipgloss.Style {
	if lane < 0 {
		lane = -lane
	}
	return laneStyles[lane%2]
}
