package adapters

import (
	"github.com/google/wire"
	internalconfig "github.com/trebuchet-org/chaincfg/internal/adapters/config"
	"github.com/trebuchet-org/chaincfg/internal/adapters/fs"
	"github.com/trebuchet-org/chaincfg/internal/adapters/interactive"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// ConfigSet provides implementations backed by the resolved configuration
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkCatalogAdapter,
	wire.Bind(new(usecase.NetworkCatalog), new(*internalconfig.NetworkCatalogAdapter)),

	internalconfig.NewEncoderAdapter,
	wire.Bind(new(usecase.ConfigEncoder), new(*internalconfig.EncoderAdapter)),

	internalconfig.NewInspectorAdapter,
	wire.Bind(new(usecase.CredentialInspector), new(*internalconfig.InspectorAdapter)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewEnvTemplateWriterAdapter,
	wire.Bind(new(usecase.EnvTemplateWriter), new(*fs.EnvTemplateWriterAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ConfigSet,
	FSSet,
	InteractiveSet,
)
