package fs

import (
	"context"

	"github.com/trebuchet-org/chaincfg/internal/config"
	domainconfig "github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// EnvTemplateWriterAdapter writes the .env template into the project root
type EnvTemplateWriterAdapter struct {
	projectRoot string
}

// NewEnvTemplateWriterAdapter creates a new EnvTemplateWriterAdapter
func NewEnvTemplateWriterAdapter(cfg *domainconfig.RuntimeConfig) *EnvTemplateWriterAdapter {
	return &EnvTemplateWriterAdapter{
		projectRoot: cfg.ProjectRoot,
	}
}

// WriteTemplate creates <projectRoot>/.env
func (a *EnvTemplateWriterAdapter) WriteTemplate(ctx context.Context, overwrite bool) (string, error) {
	return config.WriteEnvTemplate(a.projectRoot, overwrite)
}

var _ usecase.EnvTemplateWriter = (*EnvTemplateWriterAdapter)(nil)
