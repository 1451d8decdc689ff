package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/arrange/pkg/scene"
)

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the builtin scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := scene.Names()
			col := lipgloss.NewStyle().Width(columnWidth(names) + 2)
			countCol := lipgloss.NewStyle().Width(10)
			for _, name := range names {
				s, _ := scene.Lookup(name)
				nodes := 0
				s.Root.Walk(func(*scene.Node) { nodes++ })
				line := col.Render(name) + countCol.Render(fmt.Sprintf("%d nodes", nodes)) + s.Description
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// columnWidth is the display width of the widest name.
func columnWidth(names []string) int {
	w := 0
	for _, n := range names {
		w = max(w, lipgloss.Width(n))
	}
	return w
}
