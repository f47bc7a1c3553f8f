package config

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for the resolved configuration
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatFoundry Format = "foundry"
)

// FoundryProfileName is the profile written by the foundry projection
const FoundryProfileName = "default"

// ParseFormat validates a format name. The empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatTOML, FormatFoundry:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, s)
	}
}

// Export encodes root in the requested machine-readable format
func Export(w io.Writer, root *config.RootConfig, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(root); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	case FormatFoundry:
		if err := toml.NewEncoder(w).Encode(ToFoundry(root)); err != nil {
			return fmt.Errorf("failed to encode foundry.toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w for export: %q", domain.ErrUnsupportedFormat, format)
	}
}

// ToFoundry projects root onto foundry.toml. Secrets are written as ${VAR}
// references so that foundry expands them from the environment at run time.
func ToFoundry(root *config.RootConfig) *config.FoundryConfig {
	compiler := root.Compilers[0]

	profile := config.FoundryProfile{
		SrcPath:     filepath.Clean(root.Paths.Sources),
		OutPath:     filepath.Clean(root.Paths.Artifacts),
		TestPath:    filepath.Clean(root.Paths.Tests),
		CachePath:   filepath.Clean(root.Paths.Cache),
		SolcVersion: compiler.Version,
		Optimizer:   compiler.Optimizer.Enabled,
	}
	if compiler.Optimizer.Enabled {
		profile.OptimizerRuns = compiler.Optimizer.Runs
	}

	fc := &config.FoundryConfig{
		Profile:      map[string]config.FoundryProfile{FoundryProfileName: profile},
		RpcEndpoints: make(map[string]string, len(catalog)),
		Etherscan:    make(map[string]config.EtherscanEndpoint, len(catalog)),
	}

	keyRef := EnvRef(EnvInfuraAPIKey)
	for _, entry := range catalog {
		if _, ok := root.Networks[entry.name]; !ok {
			continue
		}
		fc.RpcEndpoints[entry.name] = entry.endpoint(keyRef)
		fc.Etherscan[entry.name] = config.EtherscanEndpoint{
			Key:   EnvRef(EnvEtherscanAPIKey),
			Chain: entry.chainID,
		}
	}

	return fc
}
