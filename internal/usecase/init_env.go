package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// InitEnvParams contains parameters for creating the .env template
type InitEnvParams struct {
	Force bool
}

// InitEnvResult contains the path of the written template
type InitEnvResult struct {
	Path      string
	Cancelled bool // the user declined to overwrite an existing file
}

// InitEnv is a use case for writing the .env template
type InitEnv struct {
	cfg      *config.RuntimeConfig
	writer   EnvTemplateWriter
	selector InteractiveSelector
}

// NewInitEnv creates a new InitEnv use case
func NewInitEnv(cfg *config.RuntimeConfig, writer EnvTemplateWriter, selector InteractiveSelector) *InitEnv {
	return &InitEnv{
		cfg:      cfg,
		writer:   writer,
		selector: selector,
	}
}

// Run executes the use case. An existing file is only replaced with Force
// or after the user confirms; non-interactive runs report ErrAlreadyExists.
func (uc *InitEnv) Run(ctx context.Context, params InitEnvParams) (*InitEnvResult, error) {
	path, err := uc.writer.WriteTemplate(ctx, params.Force)
	if errors.Is(err, domain.ErrAlreadyExists) && !uc.cfg.NonInteractive && uc.selector != nil {
		overwrite, confirmErr := uc.selector.Confirm(ctx, fmt.Sprintf("Overwrite existing %s", filepath.Base(path)))
		if confirmErr != nil {
			return nil, fmt.Errorf("failed to confirm overwrite: %w", confirmErr)
		}
		if !overwrite {
			return &InitEnvResult{Path: path, Cancelled: true}, nil
		}
		path, err = uc.writer.WriteTemplate(ctx, true)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create env template: %w", err)
	}

	return &InitEnvResult{
		Path: path,
	}, nil
}
