package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/arrange/pkg/terminal"
	"gitlab.com/tinyland/lab/arrange/pkg/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the colour themes with a swatch of each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if cfg.Output.ThemeFile != "" {
				if _, err := theme.LoadFile(cfg.Output.ThemeFile); err != nil {
					return err
				}
			}
			mode, err := terminal.ParseColorMode(cfg.Output.Color)
			if err != nil {
				return err
			}
			r := rendererFor(cmd.OutOrStdout(), mode)

			names := theme.Names()
			col := lipgloss.NewStyle().Width(columnWidth(names) + 2)
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), col.Render(name)+swatch(r, theme.Get(name))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// swatch shows one block per theme colour.
func swatch(r *lipgloss.Renderer, th theme.Theme) string {
	colors := append(append([]string{}, th.Depth...), th.Split, th.Dock, th.Selected)
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(r.NewStyle().Foreground(lipgloss.Color(c)).Render("■"))
	}
	return b.String()
}
