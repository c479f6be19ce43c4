package components

import (
	"time"

	"reservation-engine/internal/domain/pricing"
	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/infra/metrics"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, loc *time.Location, cfg config.Config) *reservation.LifecycleGuard {
		return reservation.NewLifecycleGuard(clk, loc, cfg.Engine.EditGracePeriod)
	},
	func(loc *time.Location, cfg config.Config) *pricing.Calculator {
		return pricing.NewCalculator(loc, cfg.Engine.FreeLabel, cfg.Engine.CurrencySymbol)
	},
	func(cfg config.Config) commands.BatchOptions {
		return commands.BatchOptions{ProbeSize: cfg.Engine.ProbeSize, PoolSize: cfg.Engine.PoolSize}
	},
	fx.Annotate(
		metrics.NewBatchMetrics,
		fx.As(new(commands.BatchMetrics)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSeriesBatchUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewPricingQueries,
		queries.NewLifecycleQueries,
	),
)
