package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"resto-booking/internal/domain/booking"
	"resto-booking/internal/infra"
	"resto-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	info, err := json.Marshal(b.Info())
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to encode booking info", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO bookings (id, restaurant_id, no_of_people, time_slot, booking_info,
		                       customer_name, customer_email, status, table_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID(), b.RestaurantID(), b.NoOfPeople(), b.Slot().String(), info,
		b.CustomerName(), b.CustomerEmail(), b.Status().String(), b.TableID(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to insert booking", err)
	}
	return nil
}

// FindByIDForUpdate row-locks the booking so update and clear serialize
// against each other.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.scanOne(ctx,
		`SELECT id, restaurant_id, no_of_people, time_slot, booking_info,
		        customer_name, customer_email, status, table_id, created_at, updated_at
		 FROM bookings WHERE id = $1
		 FOR UPDATE`,
		id,
	)
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	info, err := json.Marshal(b.Info())
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to encode booking info", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE bookings
		 SET booking_info = $2, customer_name = $3, customer_email = $4,
		     status = $5, table_id = $6, updated_at = $7
		 WHERE id = $1`,
		b.ID(), info, b.CustomerName(), b.CustomerEmail(), b.Status().String(), b.TableID(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) scanOne(ctx context.Context, query string, args ...any) (*booking.Booking, error) {
	var (
		id            uuid.UUID
		restaurantID  string
		noOfPeople    int
		slot          string
		infoRaw       []byte
		customerName  string
		customerEmail string
		status        string
		tableID       *uuid.UUID
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := r.db.QueryRow(ctx, query, args...).
		Scan(&id, &restaurantID, &noOfPeople, &slot, &infoRaw,
			&customerName, &customerEmail, &status, &tableID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find booking", err)
	}

	var info booking.Info
	if len(infoRaw) > 0 {
		if err := json.Unmarshal(infoRaw, &info); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode booking info", err)
		}
	}

	return booking.Reconstruct(
		id, restaurantID, noOfPeople, booking.Slot(slot), info,
		customerName, customerEmail, booking.Status(status), tableID, createdAt, updatedAt,
	), nil
}
