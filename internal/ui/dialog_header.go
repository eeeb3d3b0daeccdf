package ui

import (
	"fmt"

	"github.com/renato0307/gittree/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "commit history, one lane at a time",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, the version in dev mode, the tagline and
// an optional subtitle
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("gittree")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	result := appNameLine + "\n" + theme.TaglineStyle.Render(versionInfo.Tagline)
	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return result + "\n"
}

// renderDialogHeader is only called by Dialog
func renderDialogHeader(devMode bool, formTitle string) string {
	return renderHeader(devMode, formTitle)
}
