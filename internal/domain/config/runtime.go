package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	EnvFiles    []string // .env files that were loaded, in load order
	Network     string   // default network for single-network commands

	// Output settings
	Format         string
	NoColor        bool
	NonInteractive bool

	// Policy settings
	AllowUnlimitedContractSize bool
	Strict                     bool

	// Resolved configurations
	Secrets        EnvironmentSecrets
	PresentSecrets map[string]bool // secret variables that held a non-empty value
	Root           *RootConfig
}
