package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// DefaultExportFormat is used when no machine-readable format was requested
const DefaultExportFormat = "json"

// ExportConfigParams contains parameters for exporting the configuration
type ExportConfigParams struct {
	Format string
	Reveal bool
}

// ExportConfigResult contains the encoded configuration
type ExportConfigResult struct {
	Format string
	Data   []byte
}

// ExportConfig is a use case for encoding the resolved configuration
type ExportConfig struct {
	cfg     *config.RuntimeConfig
	encoder ConfigEncoder
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(cfg *config.RuntimeConfig, encoder ConfigEncoder) *ExportConfig {
	return &ExportConfig{
		cfg:     cfg,
		encoder: encoder,
	}
}

// Run executes the use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	format := params.Format
	if format == "" || format == "text" {
		format = DefaultExportFormat
	}

	root := uc.cfg.Root
	if !params.Reveal {
		root = root.Redacted()
	}

	var buf bytes.Buffer
	if err := uc.encoder.Encode(&buf, root, format); err != nil {
		return nil, fmt.Errorf("failed to export configuration: %w", err)
	}

	return &ExportConfigResult{
		Format: format,
		Data:   buf.Bytes(),
	}, nil
}
