package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

const testPrivateKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

// isolateEnv clears the resolver inputs for the duration of the test
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PRIVATE_KEY", "INFURA_API_KEY", "ETHERSCAN_API_KEY",
		"CHAINCFG_FORMAT", "CHAINCFG_NETWORK", "CHAINCFG_STRICT",
		"CHAINCFG_ALLOW_UNLIMITED_CONTRACT_SIZE", "CHAINCFG_NON_INTERACTIVE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func execute(t *testing.T, projectRoot string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--project-root", projectRoot, "--no-color", "--non-interactive"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chaincfg version dev")
}

func TestExportCmd(t *testing.T) {
	t.Run("json with redacted accounts", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("PRIVATE_KEY", testPrivateKey)
		t.Setenv("INFURA_API_KEY", "abc")

		out, err := execute(t, t.TempDir(), "export")
		require.NoError(t, err)

		var root config.RootConfig
		require.NoError(t, json.Unmarshal([]byte(out), &root))
		assert.Len(t, root.Networks, 10)
		assert.Equal(t, "https://mainnet.infura.io/v3/abc", root.Networks["mainnet"].URL)
		assert.Equal(t, "https://bsc-dataseed.binance.org/", root.Networks["bnb"].URL)
		assert.Equal(t, []string{config.RedactedAccount}, root.Networks["polygon"].Accounts)
		assert.Equal(t, "0.8.17", root.Compilers[0].Version)
		assert.Equal(t, 60000, root.TestTimeoutMs)
	})

	t.Run("reveal", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("PRIVATE_KEY", testPrivateKey)

		out, err := execute(t, t.TempDir(), "export", "--reveal")
		require.NoError(t, err)

		var root config.RootConfig
		require.NoError(t, json.Unmarshal([]byte(out), &root))
		assert.Equal(t, []string{testPrivateKey}, root.Networks["optimism"].Accounts)
	})

	t.Run("foundry", func(t *testing.T) {
		isolateEnv(t)

		out, err := execute(t, t.TempDir(), "export", "-o", "foundry")
		require.NoError(t, err)
		assert.Contains(t, out, "[profile.default]")
		assert.Contains(t, out, "[rpc_endpoints]")
		assert.Contains(t, out, "${INFURA_API_KEY}")
	})

	t.Run("unsupported format", func(t *testing.T) {
		isolateEnv(t)

		_, err := execute(t, t.TempDir(), "export", "-o", "xml")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}

func TestShowCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("ETHERSCAN_API_KEY", "scan")

		out, err := execute(t, t.TempDir(), "show")
		require.NoError(t, err)
		assert.Contains(t, out, "solc 0.8.17, optimizer on (1000 runs)")
		assert.Contains(t, out, "./contracts")
		assert.Contains(t, out, "ETH at 10 gwei, priced in USD")
		assert.Contains(t, out, "timeout: 1m0s")
		assert.Contains(t, out, "10 networks")
	})

	t.Run("explicit zero key is reported as set", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("PRIVATE_KEY", config.ZeroPrivateKey)

		out, err := execute(t, t.TempDir(), "show")
		require.NoError(t, err)
		assert.Contains(t, out, "set (all-zero key)")
		assert.Contains(t, out, "not set (fallback)")
	})

	t.Run("machine-readable format delegates to export", func(t *testing.T) {
		isolateEnv(t)

		out, err := execute(t, t.TempDir(), "show", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "https://bsc-dataseed.binance.org/")
		assert.Contains(t, out, config.RedactedAccount)
	})
}

func TestNetworksCmd(t *testing.T) {
	t.Run("without api key", func(t *testing.T) {
		isolateEnv(t)

		out, err := execute(t, t.TempDir(), "networks")
		require.NoError(t, err)
		for _, name := range []string{
			"mainnet", "goerli", "sepolia", "arbitrumRinkeby", "arbitrum",
			"bnb", "mumbai", "optimism", "optimismKovan", "polygon",
		} {
			assert.Contains(t, out, name)
		}
		assert.Contains(t, out, "9 endpoints have no API key")
	})

	t.Run("with api key", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("INFURA_API_KEY", "abc")

		out, err := execute(t, t.TempDir(), "networks", "--keyed")
		require.NoError(t, err)
		assert.NotContains(t, out, "bsc-dataseed")
		assert.NotContains(t, out, "have no API key")
	})
}

func TestNetworkCmd(t *testing.T) {
	t.Run("by argument", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("INFURA_API_KEY", "abc")

		out, err := execute(t, t.TempDir(), "network", "sepolia")
		require.NoError(t, err)
		assert.Contains(t, out, "https://sepolia.infura.io/v3/abc")
		assert.Contains(t, out, "11155111")
		assert.Contains(t, out, config.RedactedAccount)
	})

	t.Run("default from environment", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("CHAINCFG_NETWORK", "bnb")

		out, err := execute(t, t.TempDir(), "network")
		require.NoError(t, err)
		assert.Contains(t, out, "https://bsc-dataseed.binance.org/")
	})

	t.Run("missing name without prompts", func(t *testing.T) {
		isolateEnv(t)

		_, err := execute(t, t.TempDir(), "network")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network name required")
	})

	t.Run("unknown name", func(t *testing.T) {
		isolateEnv(t)

		_, err := execute(t, t.TempDir(), "network", "mainet")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "did you mean")
	})
}

func TestCheckCmd(t *testing.T) {
	t.Run("warnings without strict", func(t *testing.T) {
		isolateEnv(t)

		out, err := execute(t, t.TempDir(), "check")
		require.NoError(t, err)
		assert.Contains(t, out, "PRIVATE_KEY")
		assert.Contains(t, out, "warning(s)")
	})

	t.Run("strict fails on warnings", func(t *testing.T) {
		isolateEnv(t)

		out, err := execute(t, t.TempDir(), "check", "--strict")
		assert.ErrorIs(t, err, domain.ErrCheckFailed)
		assert.Contains(t, out, "INFURA_API_KEY")
	})

	t.Run("strict passes with complete credentials", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("PRIVATE_KEY", testPrivateKey)
		t.Setenv("INFURA_API_KEY", "abc")
		t.Setenv("ETHERSCAN_API_KEY", "scan")

		out, err := execute(t, t.TempDir(), "check", "--strict")
		require.NoError(t, err)
		assert.Contains(t, out, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")
		assert.Contains(t, out, "Configuration looks complete")
	})
}

func TestInitCmd(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	out, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Next steps")

	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "PRIVATE_KEY")

	_, err = execute(t, dir, "init")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = execute(t, dir, "init", "--force")
	require.NoError(t, err)
}
