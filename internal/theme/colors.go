package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Default graph colors, overridable through the colors config section
const (
	DefaultGraph1 = "blue"
	DefaultGraph2 = "magenta"
	DefaultHead   = "cyan"
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Commit row colors
const (
	ColorAuthor Color = "3"   // Yellow
	ColorBranch Color = "2"   // Green
	ColorDirty  Color = "208" // Orange
	ColorHash   Color = "178" // Gold
	ColorRemote Color = "1"   // Red
	ColorTag    Color = "226" // Bright yellow
)

// ColorNormal adapts the default text color to the terminal background
var ColorNormal = lipgloss.AdaptiveColor{Light: "236", Dark: "250"}

// ColorSelected is the background of the selected row
var ColorSelected = lipgloss.AdaptiveColor{Light: "254", Dark: "237"}

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorStatus    Color = "42"  // Green - operation results
)

// Git colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
)

// namedColors maps the ANSI names accepted in the config file to palette indexes
var namedColors = map[string]Color{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// ParseColor accepts an ANSI color name, a palette index or a hex value
func ParseColor(value string) Color {
	if c, ok := namedColors[value]; ok {
		return c
	}
	return Color(value)
}
