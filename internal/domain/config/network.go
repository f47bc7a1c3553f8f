package config

// NetworkDescriptor is one deployable chain target
type NetworkDescriptor struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	URL      string   `json:"url" yaml:"url" toml:"url"`
	Accounts []string `json:"accounts" yaml:"accounts" toml:"accounts"`

	ChainID       uint64 `json:"chainId" yaml:"chainId" toml:"chain_id"`
	ExplorerURL   string `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty" toml:"explorer_url,omitempty"`
	NativeToken   string `json:"nativeToken,omitempty" yaml:"nativeToken,omitempty" toml:"native_token,omitempty"`
	KeyedProvider bool   `json:"keyedProvider" yaml:"keyedProvider" toml:"keyed_provider"`
}

// LocalNetworkConfig is the in-process development network used by the test runner
type LocalNetworkConfig struct {
	AllowUnlimitedContractSize bool `json:"allowUnlimitedContractSize" yaml:"allowUnlimitedContractSize" toml:"allow_unlimited_contract_size"`
}
