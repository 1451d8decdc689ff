package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/arrange/pkg/config"
	"gitlab.com/tinyland/lab/arrange/pkg/flow"
	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/render"
	"gitlab.com/tinyland/lab/arrange/pkg/scene"
	"gitlab.com/tinyland/lab/arrange/pkg/terminal"
)

type runOpts struct {
	format   string
	viewport string
	color    string
	theme    string
}

func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "Arrange a scene once and print the result",
		Long: `Arrange a scene and print it. The scene is a builtin name (see 'arrange scenes')
or a path to a .toml/.yaml scene file; it defaults to the configured scene.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: canvas, table, json, yaml")
	cmd.Flags().StringVar(&opts.viewport, "viewport", "", "arrangement size as WIDTHxHEIGHT (default: terminal size)")
	cmd.Flags().StringVar(&opts.color, "color", "", "colour output: auto, always, never")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "colour theme (see 'arrange themes')")
	return cmd
}

func runRun(cmd *cobra.Command, args []string, opts runOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := *configFromContext(ctx)

	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.color != "" {
		cfg.Output.Color = opts.color
	}
	if opts.theme != "" {
		cfg.Output.Theme = opts.theme
	}
	if len(args) == 1 {
		cfg.Scene.Name = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	size, err := resolveViewport(opts.viewport, &cfg)
	if err != nil {
		return err
	}
	s, err := scene.Load(cfg.Scene.Name)
	if err != nil {
		return err
	}
	root, err := scene.Compile(s, flow.NewCache())
	if err != nil {
		return err
	}

	items := scene.Composer{Viewport: size, Logger: logger}.Compose(root, size)
	logger.Debug("scene arranged", "scene", s.Name, "viewport", size, "items", len(items))
	return write(cmd.OutOrStdout(), &cfg, s.Name, size, items)
}

func write(w io.Writer, cfg *config.Config, name string, size geometry.Size, items []scene.Item) error {
	mode, err := terminal.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return err
	}
	th, err := cfg.Output.ResolveTheme()
	if err != nil {
		return err
	}

	switch cfg.Output.Format {
	case "json":
		return render.EncodeJSON(w, render.NewDocument(name, size, items))
	case "yaml":
		return render.EncodeYAML(w, render.NewDocument(name, size, items))
	case "table":
		_, err := fmt.Fprintln(w, render.Table(items, rendererFor(w, mode), th))
		return err
	default:
		canvas := render.NewCanvas(size, rendererFor(w, mode))
		canvas.Theme = th
		canvas.Paint(items)
		_, err := fmt.Fprintln(w, canvas.String())
		return err
	}
}
