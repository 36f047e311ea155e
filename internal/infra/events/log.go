package events

import (
	"context"
	"log/slog"
)

// LogPublisher stands in when no broker is configured: events still show up
// in the logs and in the outbox table, nothing leaves the process.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishBookingCreated(_ context.Context, key string, payload []byte) error {
	p.logger.Info("booking event (no broker configured)",
		"key", key,
		"payload", string(payload))
	return nil
}
