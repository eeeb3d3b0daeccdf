package git

import (
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/gittree/internal/domain"
)

// FieldSeparator delimits log record fields. Git never emits it in graph
// glyphs, so graph prefixes can contain '|'.
const FieldSeparator = '\x1f'

// logFormat starts with the separator so the graph prefix becomes field 0
var logFormat = "--pretty=format:" + strings.Join([]string{"", "%H", "%h", "%an", "%ae", "%ad", "%s", "%P"}, "%x1f")

// buildLogArgs assembles the git log invocation for a filter
func buildLogArgs(filter domain.FilterOptions, defaultRange string, extraArgs []string) []string {
	// Colour escapes would land in the graph prefix
	args := []string{"log", "--graph", "--no-color", "--date-order", "--date=iso", logFormat}
	args = append(args, extraArgs...)

	if filter.Author != "" {
		args = append(args, "--author="+filter.Author)
	}
	if filter.Since != nil {
		args = append(args, "--since="+filter.Since.Format(time.RFC3339))
	}
	if filter.Until != nil {
		args = append(args, "--until="+filter.Until.Format(time.RFC3339))
	}
	if filter.MaxCommits > 0 {
		args = append(args, fmt.Sprintf("--max-count=%d", filter.MaxCommits))
	}

	rangeExpr := filter.Range
	if rangeExpr == "" {
		rangeExpr = defaultRange
	}
	if rangeExpr != "" {
		args = append(args, rangeExpr)
	}

	if filter.Path != "" {
		args = append(args, "--", filter.Path)
	}

	return args
}
