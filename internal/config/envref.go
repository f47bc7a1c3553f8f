package config

import (
	"regexp"
)

// envVarPattern matches ${VAR_NAME} references as used in foundry.toml
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// EnvRef formats a ${VAR_NAME} reference
func EnvRef(name string) string {
	return "${" + name + "}"
}

// DetectEnvVar checks if a raw value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}
