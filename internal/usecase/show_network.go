package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// ShowNetworkParams contains parameters for showing one network
type ShowNetworkParams struct {
	Name   string // empty asks the user to pick one
	Reveal bool
}

// ShowNetworkResult contains the resolved descriptor
type ShowNetworkResult struct {
	Network config.NetworkDescriptor
}

// ShowNetwork is a use case for showing a single network descriptor
type ShowNetwork struct {
	cfg      *config.RuntimeConfig
	catalog  NetworkCatalog
	selector InteractiveSelector
}

// NewShowNetwork creates a new ShowNetwork use case
func NewShowNetwork(cfg *config.RuntimeConfig, catalog NetworkCatalog, selector InteractiveSelector) *ShowNetwork {
	return &ShowNetwork{
		cfg:      cfg,
		catalog:  catalog,
		selector: selector,
	}
}

// Run executes the use case
func (uc *ShowNetwork) Run(ctx context.Context, params ShowNetworkParams) (*ShowNetworkResult, error) {
	name := params.Name
	if name == "" {
		selected, err := uc.selectNetwork(ctx)
		if err != nil {
			return nil, err
		}
		name = selected
	}

	network, err := uc.catalog.GetNetwork(ctx, name)
	if err != nil {
		return nil, err
	}

	if !params.Reveal {
		accounts := make([]string, len(network.Accounts))
		for i := range accounts {
			accounts[i] = config.RedactedAccount
		}
		network.Accounts = accounts
	}

	return &ShowNetworkResult{
		Network: network,
	}, nil
}

func (uc *ShowNetwork) selectNetwork(ctx context.Context) (string, error) {
	if uc.cfg.NonInteractive || uc.selector == nil {
		return "", fmt.Errorf("network name required (pass it as an argument or set CHAINCFG_NETWORK)")
	}

	names := lo.Map(uc.catalog.ListNetworks(ctx), func(n config.NetworkDescriptor, _ int) string {
		return n.Name
	})

	name, err := uc.selector.SelectNetwork(ctx, names, "Select network")
	if err != nil {
		return "", fmt.Errorf("failed to select network: %w", err)
	}
	return name, nil
}
