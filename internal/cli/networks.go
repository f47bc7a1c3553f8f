package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var keyedOnly bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the configured networks",
		Long: `List every network in the resolved table with its chain ID and RPC endpoint.

Endpoints served by the keyed RPC provider are flagged when INFURA_API_KEY is
not set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{
				KeyedOnly: keyedOnly,
			})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&keyedOnly, "keyed", false, "Only list networks that need INFURA_API_KEY")

	return cmd
}

// NewNetworkCmd creates the network command
func NewNetworkCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "network [name]",
		Short: "Show one network",
		Long: `Show the resolved descriptor of one network. The name defaults to
CHAINCFG_NETWORK when no argument is given; otherwise a network picker is
shown, unless --non-interactive is set.`,
		Example: `  chaincfg network sepolia
  chaincfg network bnb --reveal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name := app.Config.Network
			if len(args) > 0 {
				name = args[0]
			}
			result, err := app.ShowNetwork.Run(cmd.Context(), usecase.ShowNetworkParams{
				Name:   name,
				Reveal: reveal,
			})
			if err != nil {
				return err
			}

			return render.NewNetworkRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the signing key instead of redacting it")

	return cmd
}
