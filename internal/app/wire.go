//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chaincfg/internal/adapters"
	"github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/logging"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Logging and configuration
		logging.LoggingSet,
		config.Provider,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewListNetworks,
		usecase.NewShowNetwork,
		usecase.NewExportConfig,
		usecase.NewCheckConfig,
		usecase.NewInitEnv,

		// App
		NewApp,
	)
	return nil, nil
}
