package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/arrange/pkg/scene"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <scene>",
		Short: "Write a scene as TOML or YAML",
		Long: `Write a builtin scene (or re-encode a scene file) as TOML or YAML, as a
starting point for a custom scene.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch strings.ToLower(format) {
			case "toml":
				data, err = scene.SaveToTOML(s)
			case "yaml", "yml":
				data, err = scene.SaveToYAML(s)
			default:
				return fmt.Errorf("export: unknown format %q (want toml or yaml)", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			loggerFromContext(cmd.Context()).Info("scene exported", "scene", s.Name, "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
