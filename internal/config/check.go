package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// SignerAddress derives the account address of a hex private key
func SignerAddress(privateKey string) (common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Inspect reports credential problems that would only surface later as
// connection or verification failures in the toolchain.
func Inspect(secrets config.EnvironmentSecrets, root *config.RootConfig) []config.Finding {
	var findings []config.Finding

	switch {
	case secrets.UsesZeroKey():
		findings = append(findings, config.Finding{
			Severity: config.SeverityWarning,
			Subject:  EnvPrivateKey,
			Message:  "resolves to the all-zero key, every network signs with it",
		})
	case isEnvRef(secrets.PrivateKey):
		name, _ := DetectEnvVar(secrets.PrivateKey)
		findings = append(findings, config.Finding{
			Severity: config.SeverityWarning,
			Subject:  EnvPrivateKey,
			Message:  fmt.Sprintf("holds an unexpanded reference to %s", name),
		})
	default:
		addr, err := SignerAddress(secrets.PrivateKey)
		if err != nil {
			findings = append(findings, config.Finding{
				Severity: config.SeverityWarning,
				Subject:  EnvPrivateKey,
				Message:  fmt.Sprintf("not a usable secp256k1 private key: %v", err),
			})
		} else {
			findings = append(findings, config.Finding{
				Severity: config.SeverityInfo,
				Subject:  EnvPrivateKey,
				Message:  fmt.Sprintf("signer address %s", addr.Hex()),
			})
		}
	}

	if secrets.InfuraAPIKey == "" {
		keyed := lo.FilterMap(OrderedNetworks(root), func(n config.NetworkDescriptor, _ int) (string, bool) {
			return n.Name, n.KeyedProvider
		})
		findings = append(findings, config.Finding{
			Severity: config.SeverityWarning,
			Subject:  EnvInfuraAPIKey,
			Message:  fmt.Sprintf("not set, %d endpoints are unauthenticated: %s", len(keyed), strings.Join(keyed, ", ")),
		})
	}

	if secrets.EtherscanAPIKey == "" {
		findings = append(findings, config.Finding{
			Severity: config.SeverityWarning,
			Subject:  EnvEtherscanAPIKey,
			Message:  "not set, contract verification requests will be rejected",
		})
	}

	if root.LocalNetwork.AllowUnlimitedContractSize {
		findings = append(findings, config.Finding{
			Severity: config.SeverityInfo,
			Subject:  "localNetwork",
			Message:  "contract size limit is disabled",
		})
	}

	return findings
}

func isEnvRef(value string) bool {
	_, ok := DetectEnvVar(value)
	return ok
}

// HasWarnings reports whether any finding is a warning
func HasWarnings(findings []config.Finding) bool {
	return lo.ContainsBy(findings, func(f config.Finding) bool {
		return f.Severity == config.SeverityWarning
	})
}
