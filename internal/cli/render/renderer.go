package render

import "github.com/trebuchet-org/chaincfg/internal/usecase"

type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ShowConfigResult]   = (*ConfigRenderer)(nil)
	_ Renderer[*usecase.ExportConfigResult] = (*ExportRenderer)(nil)
	_ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
	_ Renderer[*usecase.ShowNetworkResult]  = (*NetworkRenderer)(nil)
	_ Renderer[*usecase.CheckConfigResult]  = (*CheckRenderer)(nil)
	_ Renderer[*usecase.InitEnvResult]      = (*InitRenderer)(nil)
)
