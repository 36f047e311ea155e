package events

import (
	"context"

	"resto-booking/internal/pkg/config"
	"resto-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits booking events to the configured topic. Publishing is
// fire and forget from the ledger's point of view: callers log failures and
// move on.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, key string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
