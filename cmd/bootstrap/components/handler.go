package components

import (
	"reservation-engine/internal/handler"
	"reservation-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewLifecycleHandler,
		api.NewPricingHandler,
		api.NewSeriesHandler,
		func(
			availability *api.AvailabilityHandler,
			lifecycle *api.LifecycleHandler,
			pricing *api.PricingHandler,
			series *api.SeriesHandler,
		) handler.Handlers {
			return handler.Handlers{
				Availability: availability,
				Lifecycle:    lifecycle,
				Pricing:      pricing,
				Series:       series,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
