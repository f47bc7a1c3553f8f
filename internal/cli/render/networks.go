package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// Render renders the list of networks as a table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"", "Network", "Chain ID", "Endpoint"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	var unauthenticated int
	for _, status := range result.Networks {
		icon := "✅"
		if !status.Authenticated {
			icon = "⚠️"
			unauthenticated++
		}
		t.AppendRow(table.Row{
			icon,
			color.New(color.Bold).Sprint(status.Network.Name),
			strconv.FormatUint(status.Network.ChainID, 10),
			status.Network.URL,
		})
	}
	t.Render()

	if unauthenticated > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d endpoints have no API key, set INFURA_API_KEY", unauthenticated)))
	}

	return nil
}

// NetworkRenderer renders a single network descriptor
type NetworkRenderer struct {
	out io.Writer
}

// NewNetworkRenderer creates a new network renderer
func NewNetworkRenderer(out io.Writer) *NetworkRenderer {
	return &NetworkRenderer{
		out: out,
	}
}

// Render renders the network details
func (r *NetworkRenderer) Render(result *usecase.ShowNetworkResult) error {
	n := result.Network
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "🌐 %s\n", n.Name)
	fmt.Fprintf(r.out, "Chain ID:  %d\n", n.ChainID)
	fmt.Fprintf(r.out, "Endpoint:  %s\n", n.URL)
	fmt.Fprintf(r.out, "Provider:  %s\n", providerLabel(n))
	if n.ExplorerURL != "" {
		fmt.Fprintf(r.out, "Explorer:  %s\n", n.ExplorerURL)
	}
	if n.NativeToken != "" {
		fmt.Fprintf(r.out, "Token:     %s\n", n.NativeToken)
	}
	for i, account := range n.Accounts {
		fmt.Fprintf(r.out, "Account %d: %s\n", i, account)
	}
	return nil
}

func providerLabel(n config.NetworkDescriptor) string {
	if n.KeyedProvider {
		return "infura"
	}
	return "public"
}
