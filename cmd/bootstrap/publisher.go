package bootstrap

import (
	"context"
	"log/slog"

	"resto-booking/internal/infra/events"
	"resto-booking/internal/pkg/config"
	"resto-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PublisherModule = fx.Module("publisher",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher picks the Kafka writer when a broker is configured and
// falls back to log-only delivery otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventPublisher {
	if !cfg.Kafka.Enabled() {
		logger.Info("no Kafka broker configured, booking events logged only")
		return events.NewLogPublisher(logger)
	}

	publisher := events.NewKafkaPublisher(cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("Kafka publisher initialized", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher
}
