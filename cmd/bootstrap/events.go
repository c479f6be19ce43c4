package bootstrap

import (
	"context"
	"log/slog"

	"reservation-engine/internal/infra/events"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewResultSink,
	),
)

// NewResultSink publishes batch results to Kafka when brokers are configured.
func NewResultSink(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) commands.BatchResultSink {
	if !cfg.Kafka.Enabled() {
		logger.Info("Kafka brokers not configured, batch results are not published")
		return commands.NewNoopResultSink()
	}

	sink := events.NewKafkaResultSink(events.NewKafkaWriter(cfg.Kafka), clk, cfg.Kafka.WriteTimeout)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return sink.Close()
		},
	})
	logger.Info("Publishing batch results", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return sink
}
