package config

import (
	"os"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// Environment variables read by the resolver
const (
	EnvPrivateKey      = "PRIVATE_KEY"
	EnvInfuraAPIKey    = "INFURA_API_KEY"
	EnvEtherscanAPIKey = "ETHERSCAN_API_KEY"
)

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by a fixed map
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

// WithDefault returns raw, or fallback when raw is empty.
// An empty variable is treated the same as an unset one.
func WithDefault(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

// SecretNames lists the secret variables in display order
var SecretNames = []string{EnvPrivateKey, EnvInfuraAPIKey, EnvEtherscanAPIKey}

// PresentSecrets reports which secret variables hold a non-empty value.
// It tells an explicit all-zero PRIVATE_KEY apart from the fallback.
func PresentSecrets(lookup LookupFunc) map[string]bool {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	present := make(map[string]bool, len(SecretNames))
	for _, name := range SecretNames {
		raw, _ := lookup(name)
		present[name] = raw != ""
	}
	return present
}

// LoadSecrets reads the signing key and API keys. It never fails: missing values
// are replaced by their fallbacks. A nil lookup reads the process environment.
func LoadSecrets(lookup LookupFunc) config.EnvironmentSecrets {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	get := func(key, fallback string) string {
		raw, _ := lookup(key)
		return WithDefault(raw, fallback)
	}

	return config.EnvironmentSecrets{
		PrivateKey:      get(EnvPrivateKey, config.ZeroPrivateKey),
		InfuraAPIKey:    get(EnvInfuraAPIKey, ""),
		EtherscanAPIKey: get(EnvEtherscanAPIKey, ""),
	}
}
