package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/gittree/internal/domain"
)

// FilterForm edits the history filter. Time fields accept the same
// expressions as the --since and --until flags.
type FilterForm struct {
	Cancelled  bool
	Completed  bool
	author     string
	form       *huh.Form
	maxCommits string
	now        func() time.Time
	path       string
	rangeExpr  string
	since      string
	until      string
}

// NewFilterForm creates a filter form pre-filled from current
func NewFilterForm(current domain.FilterOptions, now func() time.Time) *FilterForm {
	f := &FilterForm{
		author:    current.Author,
		now:       now,
		path:      current.Path,
		rangeExpr: current.Range,
	}
	if current.MaxCommits > 0 {
		f.maxCommits = strconv.Itoa(current.MaxCommits)
	}
	if current.Since != nil {
		f.since = current.Since.Format(time.RFC3339)
	}
	if current.Until != nil {
		f.until = current.Until.Format(time.RFC3339)
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Author").Placeholder("any").Value(&f.author),
			huh.NewInput().Title("Path").Placeholder("whole tree").Value(&f.path),
			huh.NewInput().Title("Range").Placeholder("e.g. main..feature").Value(&f.rangeExpr),
			huh.NewInput().Title("Since").Placeholder("2024-01-02 or 2w").Value(&f.since).
				Validate(func(s string) error { return f.validateRange(s, f.until) }),
			huh.NewInput().Title("Until").Placeholder("2024-02-01 or 3d").Value(&f.until).
				Validate(func(s string) error { return f.validateRange(f.since, s) }),
			huh.NewInput().Title("Max commits").Placeholder("unlimited").Value(&f.maxCommits).
				Validate(validateMaxCommits),
		),
	)
	return f
}

func (f *FilterForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *FilterForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
	case huh.StateAborted:
		f.Completed = true
		f.Cancelled = true
	}

	return f, cmd
}

func (f *FilterForm) View() string {
	return f.form.View()
}

// validateRange checks both time expressions and that since is not after until
func (f *FilterForm) validateRange(since, until string) error {
	now := f.now()

	var sinceTime, untilTime *time.Time
	if strings.TrimSpace(since) != "" {
		t, err := domain.ParseTimeExpr(since, now)
		if err != nil {
			return err
		}
		sinceTime = &t
	}
	if strings.TrimSpace(until) != "" {
		t, err := domain.ParseTimeExpr(until, now)
		if err != nil {
			return err
		}
		untilTime = &t
	}

	if sinceTime != nil && untilTime != nil && sinceTime.After(*untilTime) {
		return errors.New("since must not be after until")
	}
	return nil
}

// validateMaxCommits accepts an empty value or a non-negative integer
func validateMaxCommits(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return errors.New("max commits cannot be negative")
	}
	return nil
}

// Result builds the filter from the form fields. Fields were validated by
// the form, so parse errors leave the field unset.
func (f *FilterForm) Result() domain.FilterOptions {
	filter := domain.FilterOptions{
		Author: strings.TrimSpace(f.author),
		Path:   strings.TrimSpace(f.path),
		Range:  strings.TrimSpace(f.rangeExpr),
	}

	now := f.now()
	if t, err := domain.ParseTimeExpr(f.since, now); err == nil {
		filter.Since = &t
	}
	if t, err := domain.ParseTimeExpr(f.until, now); err == nil {
		filter.Until = &t
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.maxCommits)); err == nil && n > 0 {
		filter.MaxCommits = n
	}

	return filter
}
