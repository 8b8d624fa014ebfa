// Package bootstrap exports the fx wiring a host application mounts to get a
// fully assembled engine set. The library itself has no binary; presenters
// embed Module into their own fx graph (or call the constructors directly).
package bootstrap

import (
	"laman-client/internal/infra/api"
	"laman-client/internal/pkg/clock"
	"laman-client/internal/pkg/config"
	"laman-client/internal/usecase"
	"laman-client/internal/usecase/shared"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	GatewayModule,
	EngineModule,
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		api.NewClient,
		func(c *api.Client) usecase.CatalogGateway { return c },
		func(c *api.Client) usecase.StoreGateway { return c },
		func(c *api.Client) usecase.OrderGateway { return c },
	),
)

var EngineModule = fx.Module("engines",
	fx.Provide(
		clock.NewRealClock,
		shared.NewProductIndex,
		usecase.NewCartEngine,
		usecase.NewCatalogEngine,
		usecase.NewStoreEngine,
		usecase.NewStorefrontFactory,
		usecase.NewOrderWorkflow,
	),
)
