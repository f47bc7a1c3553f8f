package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show the resolved configuration: which secrets were provided, the compiler,
project paths, gas reporting and test runner settings.

With --format json, yaml, toml or foundry the configuration is printed in that
format instead, exactly as 'chaincfg export' would.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if app.Config.Format != string(config.FormatText) {
				result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{
					Format: app.Config.Format,
					Reveal: reveal,
				})
				if err != nil {
					return err
				}
				return render.NewExportRenderer(cmd.OutOrStdout()).Render(result)
			}

			result, err := app.ShowConfig.Run(cmd.Context(), usecase.ShowConfigParams{
				Reveal: reveal,
			})
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print signing keys instead of redacting them")

	return cmd
}
