package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/renato0307/gittree/internal/navigation"
	"github.com/renato0307/gittree/internal/render"
)

// PrintCmd writes the projected graph to stdout
type PrintCmd struct {
	FilterFlags `embed:""`

	DateFormat string `help:"Go time layout for commit dates"`
}

// Run executes the print command
func (p *PrintCmd) Run(cli *CLI) error {
	filter, err := p.Options(time.Now())
	if err != nil {
		return err
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	snapshot, err := container.HistoryService.Load(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	layout := p.DateFormat
	if layout == "" {
		layout = cli.Settings().DateFormat
	}

	// Nothing is selected and every row is projected
	frame := render.Project(snapshot.Store, navigation.State{Index: -1, Unicode: cli.Unicode}, render.Options{
		DateFormat: layout,
		Location:   time.Local,
	})
	return printFrame(os.Stdout, frame)
}

func printFrame(w io.Writer, frame render.Frame) error {
	if frame.Mode == render.ModeEmpty {
		_, err := fmt.Fprintln(w, "No commits match the current filter.")
		return err
	}
	for _, line := range frame.Lines {
		if _, err := fmt.Fprintln(w, line.Text()); err != nil {
			return err
		}
	}
	return nil
}
