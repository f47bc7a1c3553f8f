package usecase

import (
	"context"
	"io"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// NetworkCatalog exposes the resolved network table
type NetworkCatalog interface {
	ListNetworks(ctx context.Context) []config.NetworkDescriptor
	GetNetwork(ctx context.Context, name string) (config.NetworkDescriptor, error)
}

// ConfigEncoder writes the resolved configuration in a machine-readable format
type ConfigEncoder interface {
	Encode(w io.Writer, root *config.RootConfig, format string) error
}

// CredentialInspector reports problems with the resolved credentials
type CredentialInspector interface {
	Inspect(ctx context.Context, secrets config.EnvironmentSecrets, root *config.RootConfig) []config.Finding
}

// InteractiveSelector asks the user to pick from a list or confirm an action
type InteractiveSelector interface {
	SelectNetwork(ctx context.Context, names []string, prompt string) (string, error)
	Confirm(ctx context.Context, label string) (bool, error)
}

// EnvTemplateWriter creates the project's .env template
type EnvTemplateWriter interface {
	WriteTemplate(ctx context.Context, overwrite bool) (string, error)
}
