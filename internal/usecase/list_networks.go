package usecase

import (
	"context"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	KeyedOnly bool // only networks served by the keyed RPC provider
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Network       config.NetworkDescriptor
	Authenticated bool // false when a keyed endpoint was built without an API key
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	cfg     *config.RuntimeConfig
	catalog NetworkCatalog
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, catalog NetworkCatalog) *ListNetworks {
	return &ListNetworks{
		cfg:     cfg,
		catalog: catalog,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	all := uc.catalog.ListNetworks(ctx)
	hasKey := uc.cfg.Secrets.InfuraAPIKey != ""

	networks := make([]NetworkStatus, 0, len(all))
	for _, network := range all {
		if params.KeyedOnly && !network.KeyedProvider {
			continue
		}
		networks = append(networks, NetworkStatus{
			Network:       network,
			Authenticated: !network.KeyedProvider || hasKey,
		})
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
