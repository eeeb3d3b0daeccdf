package cmd

import (
	"fmt"
	"time"

	"github.com/renato0307/gittree/internal/domain"
)

// FilterFlags are the history filters shared by view, print and serve
type FilterFlags struct {
	Author     string `help:"Limit commits to an author (regex)"`
	MaxCommits int    `help:"Cap the number of commits read (0 = no limit)" default:"0"`
	Path       string `help:"Limit commits to a path"`
	Range      string `help:"Revision range (e.g. main..feature)"`
	Since      string `help:"Show commits newer than a date (RFC3339, 2006-01-02, '2006-01-02 15:04:05' or 3d, 2w, 12h)"`
	Until      string `help:"Show commits older than a date (same formats as --since)"`
}

// Options converts the flags to filter options, resolving relative dates against now
func (f FilterFlags) Options(now time.Time) (domain.FilterOptions, error) {
	if f.MaxCommits < 0 {
		return domain.FilterOptions{}, fmt.Errorf("--max-commits cannot be negative, got %d", f.MaxCommits)
	}

	filter := domain.FilterOptions{
		Author:     f.Author,
		MaxCommits: f.MaxCommits,
		Path:       f.Path,
		Range:      f.Range,
	}

	if f.Since != "" {
		t, err := domain.ParseTimeExpr(f.Since, now)
		if err != nil {
			return domain.FilterOptions{}, fmt.Errorf("--since: %w", err)
		}
		filter.Since = &t
	}
	if f.Until != "" {
		t, err := domain.ParseTimeExpr(f.Until, now)
		if err != nil {
			return domain.FilterOptions{}, fmt.Errorf("--until: %w", err)
		}
		filter.Until = &t
	}

	if filter.Since != nil && filter.Until != nil && filter.Since.After(*filter.Until) {
		return domain.FilterOptions{}, fmt.Errorf("--since (%s) is after --until (%s)",
			filter.Since.Format(time.RFC3339), filter.Until.Format(time.RFC3339))
	}

	return filter, nil
}
