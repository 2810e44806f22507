package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/campushub/admin-console/internal/registry"
)

// NewCmdKinds prints the navigation map: every administered kind, its
// backend path, and whether it carries a review workflow.
func NewCmdKinds() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the administered resource kinds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"KIND", "PATH", "SEARCHABLE", "WORKFLOW"})
			for _, d := range registry.All() {
				workflow := "-"
				if d.HasStatus() {
					targets := d.Graph.Targets(d.Graph.Initial())
					names := make([]string, 0, len(targets))
					for _, s := range targets {
						names = append(names, string(s))
					}
					workflow = fmt.Sprintf("%s -> %s", d.Graph.Initial(), strings.Join(names, " | "))
				}
				t.AppendRow(table.Row{d.Kind, d.Path, strings.Join(d.Searchable, ", "), workflow})
			}
			t.Render()
			return nil
		},
	}
}
