package config

import (
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

const infuraURLTemplate = "https://%s.infura.io/v3/%s"

// maxSuggestions caps the "did you mean" list of UnknownNetworkError
const maxSuggestions = 3

// networkEntry is one catalog entry. Exactly one of subdomain and publicURL is set.
type networkEntry struct {
	name        string
	subdomain   string
	publicURL   string
	chainID     uint64
	explorerURL string
	nativeToken string
}

func (s networkEntry) keyed() bool {
	return s.publicURL == ""
}

func (s networkEntry) endpoint(apiKey string) string {
	if !s.keyed() {
		return s.publicURL
	}
	return EndpointURL(s.subdomain, apiKey)
}

var catalog = []networkEntry{
	{name: "mainnet", subdomain: "mainnet", chainID: 1, explorerURL: "https://etherscan.io", nativeToken: "ETH"},
	{name: "goerli", subdomain: "goerli", chainID: 5, explorerURL: "https://goerli.etherscan.io", nativeToken: "ETH"},
	{name: "sepolia", subdomain: "sepolia", chainID: 11155111, explorerURL: "https://sepolia.etherscan.io", nativeToken: "ETH"},
	{name: "arbitrumRinkeby", subdomain: "arbitrum-rinkeby", chainID: 421611, explorerURL: "https://testnet.arbiscan.io", nativeToken: "ETH"},
	{name: "arbitrum", subdomain: "arbitrum-mainnet", chainID: 42161, explorerURL: "https://arbiscan.io", nativeToken: "ETH"},
	{name: "bnb", publicURL: "https://bsc-dataseed.binance.org/", chainID: 56, explorerURL: "https://bscscan.com", nativeToken: "BNB"},
	{name: "mumbai", subdomain: "polygon-mumbai", chainID: 80001, explorerURL: "https://mumbai.polygonscan.com", nativeToken: "MATIC"},
	{name: "optimism", subdomain: "optimism-mainnet", chainID: 10, explorerURL: "https://optimistic.etherscan.io", nativeToken: "ETH"},
	{name: "optimismKovan", subdomain: "optimism-kovan", chainID: 69, explorerURL: "https://kovan-optimistic.etherscan.io", nativeToken: "ETH"},
	{name: "polygon", subdomain: "polygon-mainnet", chainID: 137, explorerURL: "https://polygonscan.com", nativeToken: "MATIC"},
}

// EndpointURL formats the keyed provider URL for a subdomain.
// The key is interpolated as-is; an empty key yields a URL ending in "/v3/".
func EndpointURL(subdomain, apiKey string) string {
	return fmt.Sprintf(infuraURLTemplate, subdomain, apiKey)
}

// NetworkNames returns the supported network names in catalog order
func NetworkNames() []string {
	names := make([]string, len(catalog))
	for i, entry := range catalog {
		names[i] = entry.name
	}
	return names
}

// BuildNetworkTable materializes one descriptor per catalog entry.
// Every network signs with the same single key.
func BuildNetworkTable(secrets config.EnvironmentSecrets) map[string]config.NetworkDescriptor {
	table := make(map[string]config.NetworkDescriptor, len(catalog))
	for _, entry := range catalog {
		table[entry.name] = config.NetworkDescriptor{
			Name:          entry.name,
			URL:           entry.endpoint(secrets.InfuraAPIKey),
			Accounts:      []string{secrets.PrivateKey},
			ChainID:       entry.chainID,
			ExplorerURL:   entry.explorerURL,
			NativeToken:   entry.nativeToken,
			KeyedProvider: entry.keyed(),
		}
	}
	return table
}

// OrderedNetworks returns the descriptors of cfg in catalog order
func OrderedNetworks(cfg *config.RootConfig) []config.NetworkDescriptor {
	networks := make([]config.NetworkDescriptor, 0, len(cfg.Networks))
	for _, name := range NetworkNames() {
		if network, ok := cfg.Networks[name]; ok {
			networks = append(networks, network)
		}
	}
	return networks
}

// LookupNetwork returns the descriptor for name, or an UnknownNetworkError
// carrying the closest names when it is not in the table.
func LookupNetwork(cfg *config.RootConfig, name string) (config.NetworkDescriptor, error) {
	if network, ok := cfg.Networks[name]; ok {
		return network, nil
	}
	return config.NetworkDescriptor{}, domain.UnknownNetworkError{
		Name:        name,
		Suggestions: suggestNetworks(cfg, name),
	}
}

func suggestNetworks(cfg *config.RootConfig, name string) []string {
	names := make([]string, 0, len(cfg.Networks))
	for n := range cfg.Networks {
		names = append(names, n)
	}
	slices.Sort(names)

	matches := fuzzy.Find(name, names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}
