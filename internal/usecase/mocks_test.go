package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// MockNetworkCatalog is a mock implementation of NetworkCatalog
type MockNetworkCatalog struct {
	mock.Mock
}

func (m *MockNetworkCatalog) ListNetworks(ctx context.Context) []config.NetworkDescriptor {
	args := m.Called(ctx)
	return args.Get(0).([]config.NetworkDescriptor)
}

func (m *MockNetworkCatalog) GetNetwork(ctx context.Context, name string) (config.NetworkDescriptor, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(config.NetworkDescriptor), args.Error(1)
}

// MockConfigEncoder is a mock implementation of ConfigEncoder
type MockConfigEncoder struct {
	mock.Mock
}

func (m *MockConfigEncoder) Encode(w io.Writer, root *config.RootConfig, format string) error {
	args := m.Called(w, root, format)
	if data, ok := args.Get(0).(string); ok && data != "" {
		_, _ = io.WriteString(w, data)
	}
	return args.Error(1)
}

// MockCredentialInspector is a mock implementation of CredentialInspector
type MockCredentialInspector struct {
	mock.Mock
}

func (m *MockCredentialInspector) Inspect(ctx context.Context, secrets config.EnvironmentSecrets, root *config.RootConfig) []config.Finding {
	args := m.Called(ctx, secrets, root)
	return args.Get(0).([]config.Finding)
}

// MockEnvTemplateWriter is a mock implementation of EnvTemplateWriter
type MockEnvTemplateWriter struct {
	mock.Mock
}

func (m *MockEnvTemplateWriter) WriteTemplate(ctx context.Context, overwrite bool) (string, error) {
	args := m.Called(ctx, overwrite)
	return args.String(0), args.Error(1)
}

// MockInteractiveSelector is a mock implementation of InteractiveSelector
type MockInteractiveSelector struct {
	mock.Mock
}

func (m *MockInteractiveSelector) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	args := m.Called(ctx, names, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockInteractiveSelector) Confirm(ctx context.Context, label string) (bool, error) {
	args := m.Called(ctx, label)
	return args.Bool(0), args.Error(1)
}

func testRuntimeConfig() *config.RuntimeConfig {
	key := "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	return &config.RuntimeConfig{
		ProjectRoot: "/project",
		EnvFiles:    []string{"/project/.env"},
		Secrets: config.EnvironmentSecrets{
			PrivateKey:   key,
			InfuraAPIKey: "abc123",
		},
		PresentSecrets: map[string]bool{
			"PRIVATE_KEY":       true,
			"INFURA_API_KEY":    true,
			"ETHERSCAN_API_KEY": false,
		},
		Root: &config.RootConfig{
			Compilers: []config.CompilerSpec{{Version: "0.8.17", Optimizer: config.OptimizerSettings{Enabled: true, Runs: 1000}}},
			Networks: map[string]config.NetworkDescriptor{
				"mainnet": {Name: "mainnet", URL: "https://mainnet.infura.io/v3/abc123", Accounts: []string{key}, ChainID: 1, KeyedProvider: true},
				"bnb":     {Name: "bnb", URL: "https://bsc-dataseed.binance.org/", Accounts: []string{key}, ChainID: 56},
			},
			DependencyCompiler: config.DependencyCompilerConfig{Paths: []string{}},
			TestTimeoutMs:      60000,
		},
	}
}
