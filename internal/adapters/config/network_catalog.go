package config

import (
	"context"

	"github.com/trebuchet-org/chaincfg/internal/config"
	domainconfig "github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NetworkCatalogAdapter serves the network table of the resolved configuration
type NetworkCatalogAdapter struct {
	root *domainconfig.RootConfig
}

// NewNetworkCatalogAdapter creates a new adapter
func NewNetworkCatalogAdapter(cfg *domainconfig.RuntimeConfig) *NetworkCatalogAdapter {
	return &NetworkCatalogAdapter{
		root: cfg.Root,
	}
}

// ListNetworks returns all networks in catalog order
func (a *NetworkCatalogAdapter) ListNetworks(ctx context.Context) []domainconfig.NetworkDescriptor {
	return config.OrderedNetworks(a.root)
}

// GetNetwork returns a single network by name
func (a *NetworkCatalogAdapter) GetNetwork(ctx context.Context, name string) (domainconfig.NetworkDescriptor, error) {
	return config.LookupNetwork(a.root, name)
}

// Ensure the adapter implements the interface
var _ usecase.NetworkCatalog = (*NetworkCatalogAdapter)(nil)
