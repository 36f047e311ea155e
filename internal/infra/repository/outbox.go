package repository

import (
	"context"
	"log/slog"
	"time"

	"resto-booking/internal/infra"
	"resto-booking/internal/infra/db"

	"github.com/google/uuid"
)

// OutboxRepository records booking events in the same transaction as the
// state change that caused them. The post-commit publish is best effort; a
// row that stays pending can be drained later without losing the event.
type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, topic string, payload []byte, now time.Time) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO outbox_events (id, topic, payload, status, created_at)
		 VALUES ($1, $2, $3, 'pending', $4)`,
		id, topic, payload, now,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to enqueue outbox event", err)
	}
	return id, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, now time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE outbox_events SET status = 'published', published_at = $2 WHERE id = $1`,
		id, now,
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to mark outbox event published", err)
	}
	return nil
}
