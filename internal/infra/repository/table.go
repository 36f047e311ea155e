package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"resto-booking/internal/domain/table"
	"resto-booking/internal/infra"
	"resto-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TableRepository struct {
	db db.DBTX
}

func NewTableRepository(dbtx db.DBTX) *TableRepository {
	return &TableRepository{db: dbtx}
}

func (r *TableRepository) Create(ctx context.Context, t *table.Table) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO dining_tables (id, restaurant_id, seats, status, booking_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID(), t.RestaurantID(), t.Seats(), t.Status().String(), t.BookingID(), t.CreatedAt(), t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to insert table", err)
	}
	return nil
}

func (r *TableRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*table.Table, error) {
	return r.scanOne(ctx,
		`SELECT id, restaurant_id, seats, status, booking_id, created_at, updated_at
		 FROM dining_tables WHERE id = $1
		 FOR UPDATE`,
		id,
	)
}

// FindAvailableForUpdate selects one claimable table and row-locks it for the
// rest of the transaction. SKIP LOCKED keeps concurrent booking attempts from
// queueing on the same row; they move on to the next candidate instead.
// Smallest sufficient table first so large parties are not starved.
func (r *TableRepository) FindAvailableForUpdate(ctx context.Context, restaurantID string, minSeats int) (*table.Table, error) {
	return r.scanOne(ctx,
		`SELECT id, restaurant_id, seats, status, booking_id, created_at, updated_at
		 FROM dining_tables
		 WHERE restaurant_id = $1 AND seats >= $2 AND status = $3
		 ORDER BY seats ASC, created_at ASC
		 LIMIT 1
		 FOR UPDATE SKIP LOCKED`,
		restaurantID, minSeats, table.StatusAvailable.String(),
	)
}

// Occupy is the atomic claim: the status predicate makes the update
// conditional, so a caller that lost the race gets Conflict instead of
// silently stealing the table.
func (r *TableRepository) Occupy(ctx context.Context, tableID, bookingID uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE dining_tables
		 SET status = $3, booking_id = $4, updated_at = $5
		 WHERE id = $1 AND status = $2`,
		tableID, table.StatusAvailable.String(), table.StatusOccupied.String(), bookingID, now,
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to occupy table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindConflict, "table not available", nil)
	}
	return nil
}

// Release is idempotent: an already-available table is written back to the
// same state.
func (r *TableRepository) Release(ctx context.Context, tableID uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE dining_tables
		 SET status = $2, booking_id = NULL, updated_at = $3
		 WHERE id = $1`,
		tableID, table.StatusAvailable.String(), now,
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to release table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "table not found", nil)
	}
	return nil
}

func (r *TableRepository) Save(ctx context.Context, t *table.Table) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE dining_tables
		 SET seats = $2, status = $3, booking_id = $4, updated_at = $5
		 WHERE id = $1`,
		t.ID(), t.Seats(), t.Status().String(), t.BookingID(), t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "table not found", nil)
	}
	return nil
}

func (r *TableRepository) scanOne(ctx context.Context, query string, args ...any) (*table.Table, error) {
	var (
		id           uuid.UUID
		restaurantID string
		seats        int
		status       string
		bookingID    *uuid.UUID
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := r.db.QueryRow(ctx, query, args...).
		Scan(&id, &restaurantID, &seats, &status, &bookingID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "table not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find table", err)
	}

	return table.Reconstruct(id, restaurantID, seats, table.Status(status), bookingID, createdAt, updatedAt), nil
}
