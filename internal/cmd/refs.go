package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/renato0307/gittree/internal/domain"
)

// RefsCmd lists the repository references
type RefsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the refs command
func (r *RefsCmd) Run(cli *CLI) error {
	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	refs, err := container.HistoryService.Refs(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list references: %w", err)
	}

	if r.Format == "json" {
		return printRefsJSON(os.Stdout, refs)
	}
	return printRefsTable(os.Stdout, refs)
}

func printRefsJSON(w io.Writer, refs []domain.Reference) error {
	type entry struct {
		Hash string `json:"hash"`
		Kind string `json:"kind"`
		Name string `json:"name"`
	}

	entries := make([]entry, len(refs))
	for i, ref := range refs {
		entries[i] = entry{Hash: ref.Hash, Kind: string(ref.Kind), Name: ref.Name}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printRefsTable(w io.Writer, refs []domain.Reference) error {
	if len(refs) == 0 {
		_, err := fmt.Fprintln(w, "No references found.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Name", "Kind", "Commit")
	for _, ref := range refs {
		short := ref.Hash
		if len(short) > 7 {
			short = short[:7]
		}
		if err := table.Append(ref.Name, string(ref.Kind), short); err != nil {
			return fmt.Errorf("failed to build table: %w", err)
		}
	}
	return table.Render()
}
