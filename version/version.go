package version

import "fmt"

// Tagline is the application's tagline used in help text and dialog headers
const Tagline = "commit history, one lane at a time"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/renato0307/gittree/version.Version=v1.0.0"
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("gittree %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
