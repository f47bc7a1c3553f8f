package config

import (
	"io"

	"github.com/trebuchet-org/chaincfg/internal/config"
	domainconfig "github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// EncoderAdapter encodes configuration with the formats known to the config package
type EncoderAdapter struct{}

// NewEncoderAdapter creates a new adapter
func NewEncoderAdapter() *EncoderAdapter {
	return &EncoderAdapter{}
}

// Encode writes root to w in the named format
func (a *EncoderAdapter) Encode(w io.Writer, root *domainconfig.RootConfig, format string) error {
	f, err := config.ParseFormat(format)
	if err != nil {
		return err
	}
	return config.Export(w, root, f)
}

var _ usecase.ConfigEncoder = (*EncoderAdapter)(nil)
