package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// CheckConfigParams contains parameters for checking credentials
type CheckConfigParams struct {
	Strict bool // report warnings as a failure
}

// CheckConfigResult contains the findings of a check
type CheckConfigResult struct {
	Findings []config.Finding
}

// Warnings returns the findings with warning severity
func (r *CheckConfigResult) Warnings() []config.Finding {
	return lo.Filter(r.Findings, func(f config.Finding, _ int) bool {
		return f.Severity == config.SeverityWarning
	})
}

// CheckConfig is a use case for inspecting the resolved credentials
type CheckConfig struct {
	cfg       *config.RuntimeConfig
	inspector CredentialInspector
}

// NewCheckConfig creates a new CheckConfig use case
func NewCheckConfig(cfg *config.RuntimeConfig, inspector CredentialInspector) *CheckConfig {
	return &CheckConfig{
		cfg:       cfg,
		inspector: inspector,
	}
}

// Run executes the use case. The result is always returned; in strict mode
// warnings additionally produce domain.ErrCheckFailed.
func (uc *CheckConfig) Run(ctx context.Context, params CheckConfigParams) (*CheckConfigResult, error) {
	result := &CheckConfigResult{
		Findings: uc.inspector.Inspect(ctx, uc.cfg.Secrets, uc.cfg.Root),
	}

	if params.Strict && len(result.Warnings()) > 0 {
		return result, domain.ErrCheckFailed
	}

	return result, nil
}
