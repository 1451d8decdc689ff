package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/arrange/pkg/config"
	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/terminal"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the arrange CLI. A failing command is logged to stderr and
// its error returned.
func Execute() error {
	err := newRootCmd(os.Stderr).ExecuteContext(context.Background())
	if err != nil {
		newLogger(os.Stderr, log.InfoLevel).Error("command failed", "err", err)
	}
	return err
}

// newRootCmd builds the command tree. Logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "arrange",
		Short:         "Arrange dock, split and flow layouts for terminal UIs",
		Long:          `arrange computes where every widget of a container goes: split widgets cut strips off the area, dock widgets pin to its edges, and the rest flow through a pluggable layout and are aligned in what remains.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			var err error
			if configPath != "" {
				cfg, err = config.LoadFromFile(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			level := cfg.General.Level()
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(logOut, level)
			logger.Debug("config loaded", "scene", cfg.Scene.Name, "format", cfg.Output.Format)

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("arrange %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newScenesCmd())
	root.AddCommand(newThemesCmd())
	root.AddCommand(newExportCmd())
	return root
}

// resolveViewport picks the flag value, then the configured size, then the
// terminal.
func resolveViewport(flag string, cfg *config.Config) (geometry.Size, error) {
	if flag != "" {
		return terminal.ParseViewport(flag)
	}
	if size, ok := cfg.Viewport.Size(); ok {
		return size, nil
	}
	return terminal.Viewport(), nil
}

// rendererFor returns a lipgloss renderer for w honouring the colour mode.
// Writers that are not files are treated as non-terminals.
func rendererFor(w io.Writer, mode terminal.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if f, ok := w.(*os.File); ok {
		r.SetColorProfile(terminal.ColorProfile(f, mode))
		return r
	}
	if mode == terminal.ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
