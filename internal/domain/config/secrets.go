package config

// ZeroPrivateKey is the signing key used when PRIVATE_KEY is not provided.
const ZeroPrivateKey = "0x0000000000000000000000000000000000000000000000000000000000000000"

// EnvironmentSecrets holds the credentials read from the process environment
type EnvironmentSecrets struct {
	PrivateKey      string
	InfuraAPIKey    string
	EtherscanAPIKey string
}

// UsesZeroKey reports whether the signer fell back to ZeroPrivateKey
func (s EnvironmentSecrets) UsesZeroKey() bool {
	return s.PrivateKey == ZeroPrivateKey
}
