package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/gittree/internal/domain"
)

func TestBuildLogArgs(t *testing.T) {
	since := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	until := since.Add(48 * time.Hour)
	base := []string{"log", "--graph", "--no-color", "--date-order", "--date=iso", logFormat}

	tests := []struct {
		name         string
		filter       domain.FilterOptions
		defaultRange string
		extraArgs    []string
		want         []string
	}{
		{
			name: "no filter",
			want: base,
		},
		{
			name:         "default range used when filter has none",
			defaultRange: "--all",
			want:         append(append([]string{}, base...), "--all"),
		},
		{
			name:         "filter range overrides default",
			filter:       domain.FilterOptions{Range: "main..feature"},
			defaultRange: "--all",
			want:         append(append([]string{}, base...), "main..feature"),
		},
		{
			name: "all filters",
			filter: domain.FilterOptions{
				Author:     "alice",
				MaxCommits: 50,
				Path:       "docs/",
				Since:      &since,
				Until:      &until,
			},
			extraArgs: []string{"--first-parent"},
			want: append(append([]string{}, base...),
				"--first-parent",
				"--author=alice",
				"--since=2024-01-02T03:04:05Z",
				"--until=2024-01-04T03:04:05Z",
				"--max-count=50",
				"--", "docs/"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildLogArgs(tt.filter, tt.defaultRange, tt.extraArgs))
		})
	}
}

func TestLogFormat_StartsWithSeparator(t *testing.T) {
	assert.Equal(t, "--pretty=format:%x1f%H%x1f%h%x1f%an%x1f%ae%x1f%ad%x1f%s%x1f%P", logFormat)
}

func TestBuildLogArgs_DisablesColor(t *testing.T) {
	args := buildLogArgs(domain.FilterOptions{Author: "alice"}, "--all", []string{"--first-parent"})

	assert.Contains(t, args, "--no-color")
	assert.Less(t, indexOf(args, "--no-color"), indexOf(args, logFormat))
}

func indexOf(values []string, v string) int {
	for i, value := range values {
		if value == v {
			return i
		}
	}
	return -1
}
