package domain

import "time"

// FilterOptions are passed through to the log producer
type FilterOptions struct {
	Author     string
	MaxCommits int
	Path       string
	Range      string
	Since      *time.Time
	Until      *time.Time
}

// IsEmpty returns true if no filter is set
func (f FilterOptions) IsEmpty() bool {
	return f.Author == "" && f.Path == "" && f.Range == "" &&
		f.Since == nil && f.Until == nil && f.MaxCommits == 0
}
