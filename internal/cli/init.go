package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .env template in the project root",
		Long: `Create a .env file listing PRIVATE_KEY, INFURA_API_KEY and ETHERSCAN_API_KEY
with empty values. An existing .env is only replaced with --force or after
confirming the prompt; with --non-interactive it is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InitEnv.Run(cmd.Context(), usecase.InitEnvParams{
				Force: force,
			})
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			if err != nil {
				return err
			}

			return render.NewInitRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .env")

	return cmd
}
