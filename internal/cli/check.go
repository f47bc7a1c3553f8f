package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the resolved credentials",
		Long: `Report fallback values and malformed credentials in the resolved
configuration. Resolution itself never fails; this command is the place
where missing keys become visible.

With --strict (or CHAINCFG_STRICT=true) any warning makes the command exit
non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, checkErr := app.CheckConfig.Run(cmd.Context(), usecase.CheckConfigParams{
				Strict: app.Config.Strict,
			})
			if result == nil {
				return checkErr
			}

			if err := render.NewCheckRenderer(cmd.OutOrStdout()).Render(result); err != nil {
				return err
			}
			return checkErr
		},
	}

	cmd.Flags().Bool("strict", false, "Exit non-zero when any warning is reported")

	return cmd
}
