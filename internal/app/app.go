package app

import (
	"log/slog"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	ShowConfig   *usecase.ShowConfig
	ListNetworks *usecase.ListNetworks
	ShowNetwork  *usecase.ShowNetwork
	ExportConfig *usecase.ExportConfig
	CheckConfig  *usecase.CheckConfig
	InitEnv      *usecase.InitEnv
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	showNetwork *usecase.ShowNetwork,
	exportConfig *usecase.ExportConfig,
	checkConfig *usecase.CheckConfig,
	initEnv *usecase.InitEnv,
) (*App, error) {
	return &App{
		Config:       cfg,
		Log:          log,
		ShowConfig:   showConfig,
		ListNetworks: listNetworks,
		ShowNetwork:  showNetwork,
		ExportConfig: exportConfig,
		CheckConfig:  checkConfig,
		InitEnv:      initEnv,
	}, nil
}
