package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"resto-booking/internal/infra"
	"resto-booking/internal/infra/db"
	"resto-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, restaurant_id, no_of_people, time_slot, booking_info,
		        customer_name, customer_email, status, table_id, created_at, updated_at
		 FROM bookings WHERE id = $1`,
		id,
	)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByCustomerEmail(ctx context.Context, email string) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, restaurant_id, no_of_people, time_slot, booking_info,
		        customer_name, customer_email, status, table_id, created_at, updated_at
		 FROM bookings
		 WHERE customer_email = $1
		 ORDER BY created_at DESC`,
		email,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view    queries.BookingView
		infoRaw []byte
		tableID *uuid.UUID
		created time.Time
		updated time.Time
	)

	err := row.Scan(&view.ID, &view.RestaurantID, &view.NoOfPeople, &view.TimeSlot, &infoRaw,
		&view.CustomerName, &view.CustomerEmail, &view.Status, &tableID, &created, &updated)
	if err != nil {
		return nil, err
	}

	view.BookingInfo = map[string]any{}
	if len(infoRaw) > 0 {
		if err := json.Unmarshal(infoRaw, &view.BookingInfo); err != nil {
			return nil, err
		}
	}
	view.TableID = tableID
	view.CreatedAt = created
	view.UpdatedAt = updated
	return &view, nil
}
