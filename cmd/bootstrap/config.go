package bootstrap

import (
	"time"

	"reservation-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewEngineLocation,
	),
)

// NewEngineLocation is the zone that decides calendar days for edit windows, pricing tiers and time-of-day edits.
func NewEngineLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Engine.Location()
}
