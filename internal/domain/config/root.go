package config

import (
	"maps"
	"slices"
	"time"
)

// OptimizerSettings controls the solc optimizer. Runs is ignored when Enabled is false.
type OptimizerSettings struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs" toml:"runs"`
}

// CompilerSpec selects one compiler version and its settings
type CompilerSpec struct {
	Version   string            `json:"version" yaml:"version" toml:"version"`
	Optimizer OptimizerSettings `json:"optimizer" yaml:"optimizer" toml:"optimizer"`
}

// PathConfig holds project-relative directories used by the toolchain
type PathConfig struct {
	Artifacts string `json:"artifacts" yaml:"artifacts" toml:"artifacts"`
	Cache     string `json:"cache" yaml:"cache" toml:"cache"`
	Sources   string `json:"sources" yaml:"sources" toml:"sources"`
	Tests     string `json:"tests" yaml:"tests" toml:"tests"`
}

// GasReporterConfig holds gas-cost reporting parameters
type GasReporterConfig struct {
	Currency     string `json:"currency" yaml:"currency" toml:"currency"`
	Enabled      bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	GasPriceGwei int    `json:"gasPrice" yaml:"gasPrice" toml:"gas_price"`
	Token        string `json:"token" yaml:"token" toml:"token"`
}

// EtherscanConfig holds the block-explorer verification key
type EtherscanConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey" toml:"api_key"`
}

// TypechainConfig describes where generated contract bindings are written
type TypechainConfig struct {
	OutDir string `json:"outDir" yaml:"outDir" toml:"out_dir"`
	Target string `json:"target" yaml:"target" toml:"target"`
}

// DependencyCompilerConfig lists external sources compiled alongside the project
type DependencyCompilerConfig struct {
	Paths []string `json:"paths" yaml:"paths" toml:"paths"`
}

// RootConfig is the resolved toolchain configuration.
// It is built once per invocation and must not be mutated afterwards.
type RootConfig struct {
	Compilers          []CompilerSpec               `json:"compilers" yaml:"compilers" toml:"compilers"`
	Networks           map[string]NetworkDescriptor `json:"networks" yaml:"networks" toml:"networks"`
	LocalNetwork       LocalNetworkConfig           `json:"localNetwork" yaml:"localNetwork" toml:"local_network"`
	Etherscan          EtherscanConfig              `json:"etherscan" yaml:"etherscan" toml:"etherscan"`
	Paths              PathConfig                   `json:"paths" yaml:"paths" toml:"paths"`
	Typechain          TypechainConfig              `json:"typechain" yaml:"typechain" toml:"typechain"`
	DependencyCompiler DependencyCompilerConfig     `json:"dependencyCompiler" yaml:"dependencyCompiler" toml:"dependency_compiler"`
	GasReporter        GasReporterConfig            `json:"gasReporter" yaml:"gasReporter" toml:"gas_reporter"`
	TestTimeoutMs      int                          `json:"testTimeoutMs" yaml:"testTimeoutMs" toml:"test_timeout_ms"`
}

// TestTimeout returns the test-runner timeout as a duration
func (c *RootConfig) TestTimeout() time.Duration {
	return time.Duration(c.TestTimeoutMs) * time.Millisecond
}

// Clone returns a deep copy that callers may modify freely
func (c *RootConfig) Clone() *RootConfig {
	clone := *c
	clone.Compilers = slices.Clone(c.Compilers)
	clone.DependencyCompiler.Paths = slices.Clone(c.DependencyCompiler.Paths)
	clone.Networks = maps.Clone(c.Networks)
	for name, network := range clone.Networks {
		network.Accounts = slices.Clone(network.Accounts)
		clone.Networks[name] = network
	}
	return &clone
}

// RedactedAccount replaces signing keys in redacted copies
const RedactedAccount = "<redacted>"

// Redacted returns a copy with every signing account masked
func (c *RootConfig) Redacted() *RootConfig {
	clone := c.Clone()
	for name, network := range clone.Networks {
		for i := range network.Accounts {
			network.Accounts[i] = RedactedAccount
		}
		clone.Networks[name] = network
	}
	return clone
}
