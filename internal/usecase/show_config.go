package usecase

import (
	"context"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

var secretNames = []string{"PRIVATE_KEY", "INFURA_API_KEY", "ETHERSCAN_API_KEY"}

// ShowConfigParams contains parameters for showing the configuration
type ShowConfigParams struct {
	Reveal bool // show signing keys instead of redacting them
}

// SecretStatus records whether one environment secret was provided
type SecretStatus struct {
	Name    string
	Set     bool
	ZeroKey bool // set, but to the all-zero signing key
}

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	ProjectRoot string
	EnvFiles    []string
	Secrets     []SecretStatus
	Root        *config.RootConfig
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context, params ShowConfigParams) (*ShowConfigResult, error) {
	root := uc.cfg.Root
	if !params.Reveal {
		root = root.Redacted()
	}

	present := uc.cfg.PresentSecrets
	statuses := make([]SecretStatus, 0, len(secretNames))
	for _, name := range secretNames {
		status := SecretStatus{Name: name, Set: present[name]}
		if name == "PRIVATE_KEY" {
			status.ZeroKey = status.Set && uc.cfg.Secrets.UsesZeroKey()
		}
		statuses = append(statuses, status)
	}

	return &ShowConfigResult{
		ProjectRoot: uc.cfg.ProjectRoot,
		EnvFiles:    uc.cfg.EnvFiles,
		Secrets:     statuses,
		Root:        root,
	}, nil
}
