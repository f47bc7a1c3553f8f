package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper, log *slog.Logger) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		projectRoot = FindProjectRoot(cwd)
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	format, err := ParseFormat(v.GetString("format"))
	if err != nil {
		return nil, err
	}

	envFiles, err := LoadDotEnv(projectRoot)
	if err != nil {
		log.Warn("some env files could not be loaded", "error", err)
	}
	log.Debug("loaded env files", "files", envFiles)

	opts := Options{
		AllowUnlimitedContractSize: v.GetBool("allow_unlimited_contract_size"),
	}
	secrets, root := Resolve(os.LookupEnv, opts)

	return &config.RuntimeConfig{
		ProjectRoot:                projectRoot,
		EnvFiles:                   envFiles,
		Network:                    v.GetString("network"),
		Format:                     string(format),
		NoColor:                    v.GetBool("no_color"),
		NonInteractive:             v.GetBool("non_interactive"),
		AllowUnlimitedContractSize: opts.AllowUnlimitedContractSize,
		Strict:                     v.GetBool("strict"),
		Secrets:                    secrets,
		PresentSecrets:             PresentSecrets(os.LookupEnv),
		Root:                       root,
	}, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("chaincfg")
	v.SetConfigType("toml")
	v.AddConfigPath(projectRoot)

	// Set up environment variables
	v.SetEnvPrefix("CHAINCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("format", string(FormatText))
	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("allow_unlimited_contract_size", false)
	v.SetDefault("strict", false)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if flags != nil {
		flags.VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}
			v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
		})
	}

	return v
}
