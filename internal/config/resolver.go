package config

import (
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// Static toolchain settings
const (
	SolidityVersion    = "0.8.17"
	OptimizerRuns      = 1000
	TestTimeoutMs      = 60000
	GasReportCurrency  = "USD"
	GasReportPriceGwei = 10
	GasReportToken     = "ETH"
	TypechainOutDir    = "./typechain-types"
	TypechainTarget    = "ethers-v5"
)

// Options carries resolution policy that is not derived from the environment
type Options struct {
	// AllowUnlimitedContractSize lifts the contract-size limit on the local network.
	AllowUnlimitedContractSize bool
}

// BuildRootConfig composes the network table with the static sections.
// The result is freshly allocated on every call.
func BuildRootConfig(secrets config.EnvironmentSecrets, opts Options) *config.RootConfig {
	return &config.RootConfig{
		Compilers: []config.CompilerSpec{
			{
				Version: SolidityVersion,
				Optimizer: config.OptimizerSettings{
					Enabled: true,
					Runs:    OptimizerRuns,
				},
			},
		},
		Networks: BuildNetworkTable(secrets),
		LocalNetwork: config.LocalNetworkConfig{
			AllowUnlimitedContractSize: opts.AllowUnlimitedContractSize,
		},
		Etherscan: config.EtherscanConfig{
			APIKey: secrets.EtherscanAPIKey,
		},
		Paths: config.PathConfig{
			Artifacts: "./artifacts",
			Cache:     "./cache",
			Sources:   "./contracts",
			Tests:     "./tests",
		},
		Typechain: config.TypechainConfig{
			OutDir: TypechainOutDir,
			Target: TypechainTarget,
		},
		DependencyCompiler: config.DependencyCompilerConfig{
			Paths: []string{},
		},
		GasReporter: config.GasReporterConfig{
			Currency:     GasReportCurrency,
			Enabled:      true,
			GasPriceGwei: GasReportPriceGwei,
			Token:        GasReportToken,
		},
		TestTimeoutMs: TestTimeoutMs,
	}
}

// Resolve reads the secrets through lookup and builds the root configuration
func Resolve(lookup LookupFunc, opts Options) (config.EnvironmentSecrets, *config.RootConfig) {
	secrets := LoadSecrets(lookup)
	return secrets, BuildRootConfig(secrets, opts)
}
