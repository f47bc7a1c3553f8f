package config

import (
	"context"

	"github.com/trebuchet-org/chaincfg/internal/config"
	domainconfig "github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// InspectorAdapter runs the credential inspection of the config package
type InspectorAdapter struct{}

// NewInspectorAdapter creates a new adapter
func NewInspectorAdapter() *InspectorAdapter {
	return &InspectorAdapter{}
}

func (a *InspectorAdapter) Inspect(ctx context.Context, secrets domainconfig.EnvironmentSecrets, root *domainconfig.RootConfig) []domainconfig.Finding {
	return config.Inspect(secrets, root)
}

var _ usecase.CredentialInspector = (*InspectorAdapter)(nil)
