package config

// FoundryConfig is the foundry.toml projection of a RootConfig
type FoundryConfig struct {
	Profile      map[string]FoundryProfile    `toml:"profile"`
	RpcEndpoints map[string]string            `toml:"rpc_endpoints"`
	Etherscan    map[string]EtherscanEndpoint `toml:"etherscan,omitempty"`
}

// FoundryProfile holds the compiler and layout settings of one foundry profile
type FoundryProfile struct {
	SrcPath       string `toml:"src"`
	OutPath       string `toml:"out"`
	TestPath      string `toml:"test"`
	CachePath     string `toml:"cache_path"`
	SolcVersion   string `toml:"solc_version"`
	Optimizer     bool   `toml:"optimizer"`
	OptimizerRuns int    `toml:"optimizer_runs"`
}

// EtherscanEndpoint represents Etherscan configuration for a network
// This matches Foundry's expected structure
type EtherscanEndpoint struct {
	Key   string `toml:"key"`
	Chain uint64 `toml:"chain,omitempty"`
	URL   string `toml:"url,omitempty"`
}
