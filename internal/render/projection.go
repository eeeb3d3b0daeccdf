package render

import (
	"strings"
	"time"

	"github.com/renato0307/gittree/internal/graph"
	"github.com/renato0307/gittree/internal/navigation"
)

// DefaultDateFormat is used when Options.DateFormat is empty
const DefaultDateFormat = "2006-01-02 15:04"

// Mode selects which full-screen projection a frame holds
type Mode int

const (
	ModeRows Mode = iota
	ModeHelp
	ModeEmpty
)

// Options configures the projection
type Options struct {
	DateFormat string
	Height     int            // rows to project from the viewport offset, <= 0 projects all
	Location   *time.Location // display timezone, nil means UTC
}

// Line is one projected commit row, unstyled
type Line struct {
	Author    string
	Date      string
	Graph     string
	Index     int // row in the store
	Lane      int
	Message   string
	Refs      []string
	Selected  bool
	ShortHash string
}

// RefsAnnotation returns " (a, b)" or "" when the row has no refs
func (l Line) RefsAnnotation() string {
	if len(l.Refs) == 0 {
		return ""
	}
	return " (" + strings.Join(l.Refs, ", ") + ")"
}

// Text returns the plain text of the row
func (l Line) Text() string {
	return l.Graph + " " + l.ShortHash + " " + l.Author + " " + l.Date + " " + l.Message + l.RefsAnnotation()
}

// Frame is the result of projecting one screen
type Frame struct {
	Lines    []Line
	Mode     Mode
	Selected int // position in Lines of the selected row, -1 if not visible
}

// Project derives the display rows for the current state. It does not modify
// the store or the state.
func Project(store *graph.Store, state navigation.State, opts Options) Frame {
	if state.ShowHelp {
		return Frame{Mode: ModeHelp, Selected: -1}
	}
	if store.Len() == 0 {
		return Frame{Mode: ModeEmpty, Selected: -1}
	}

	layout := opts.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	glyphs := Glyphs(state.Unicode)

	start, end := 0, store.Len()
	if opts.Height > 0 {
		start = min(max(state.ViewportOffset, 0), store.Len())
		end = min(start+opts.Height, store.Len())
	}

	frame := Frame{
		Lines:    make([]Line, 0, end-start),
		Mode:     ModeRows,
		Selected: -1,
	}
	for i := start; i < end; i++ {
		commit, _ := store.At(i)
		line := Line{
			Author:    commit.Author,
			Date:      commit.Date.In(loc).Format(layout),
			Graph:     glyphs.Render(commit.GraphTokens),
			Index:     i,
			Lane:      commit.Lane,
			Message:   commit.Message,
			Refs:      commit.Refs,
			Selected:  i == state.Index,
			ShortHash: commit.ShortHash,
		}
		if line.Selected {
			frame.Selected = len(frame.Lines)
		}
		frame.Lines = append(frame.Lines, line)
	}

	return frame
}
