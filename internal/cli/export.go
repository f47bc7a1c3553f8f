package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the resolved configuration for other tools",
		Long: `Print the resolved configuration in a machine-readable format.

Formats: json (default), yaml, toml, and foundry which emits a foundry.toml
with [profile.default], [rpc_endpoints] and [etherscan] sections. Signing keys
are redacted unless --reveal is given.`,
		Example: `  chaincfg export
  chaincfg export -o foundry > foundry.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{
				Format: app.Config.Format,
				Reveal: reveal,
			})
			if err != nil {
				return err
			}

			return render.NewExportRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print signing keys instead of redacting them")

	return cmd
}
