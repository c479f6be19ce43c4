package components

import (
	"reservation-engine/internal/infra/readstore"
	"reservation-engine/internal/infra/repository"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(commands.OccurrenceReader)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingReadStore)),
		),
		// Write side
		fx.Annotate(
			repository.NewOccurrenceRepository,
			fx.As(new(commands.OccurrenceMutator)),
		),
	),
)
