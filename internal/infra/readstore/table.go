package readstore

import (
	"context"
	"errors"
	"log/slog"

	"resto-booking/internal/infra"
	"resto-booking/internal/infra/db"
	"resto-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TableReadStore struct {
	db db.DBTX
}

func NewTableReadStore(dbtx db.DBTX) *TableReadStore {
	return &TableReadStore{db: dbtx}
}

func (s *TableReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TableView, error) {
	var view queries.TableView
	err := s.db.QueryRow(ctx,
		`SELECT id, restaurant_id, seats, status, booking_id, created_at, updated_at
		 FROM dining_tables WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.RestaurantID, &view.Seats, &view.Status, &view.BookingID, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "table not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find table", err)
	}
	return &view, nil
}

func (s *TableReadStore) ListByRestaurant(ctx context.Context, restaurantID string) ([]*queries.TableView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, restaurant_id, seats, status, booking_id, created_at, updated_at
		 FROM dining_tables
		 WHERE restaurant_id = $1
		 ORDER BY created_at ASC`,
		restaurantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list tables", err)
	}
	defer rows.Close()

	views := []*queries.TableView{}
	for rows.Next() {
		var view queries.TableView
		if err := rows.Scan(&view.ID, &view.RestaurantID, &view.Seats, &view.Status, &view.BookingID, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan table", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to iterate tables", err)
	}
	return views, nil
}
