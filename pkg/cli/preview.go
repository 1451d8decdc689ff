package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/arrange/pkg/preview"
	"gitlab.com/tinyland/lab/arrange/pkg/scene"
	"gitlab.com/tinyland/lab/arrange/pkg/terminal"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [scene]",
		Short: "Arrange a scene live, re-arranging on every resize",
		Long: `Open an interactive preview of a scene. Tab cycles focus, clicking focuses the
topmost element under the pointer, and scene files are re-read every
preview.reload so edits appear without restarting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			ref := cfg.Scene.Name
			if len(args) == 1 {
				ref = args[0]
			}
			s, err := scene.Load(ref)
			if err != nil {
				return err
			}

			mode, err := terminal.ParseColorMode(cfg.Output.Color)
			if err != nil {
				return err
			}
			th, err := cfg.Output.ResolveTheme()
			if err != nil {
				return err
			}
			m, err := preview.New(preview.Options{
				Ref:      ref,
				Scene:    s,
				Reload:   cfg.Preview.Reload.Duration,
				Size:     terminal.Viewport(),
				Logger:   logger,
				Renderer: rendererFor(os.Stdout, mode),
				Theme:    th,
			})
			if err != nil {
				return err
			}

			logger.Debug("starting preview", "scene", s.Name, "reload", cfg.Preview.Reload)
			p := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = p.Run()
			return err
		},
	}
}
