package shared

import (
	"context"
	"time"

	"resto-booking/internal/domain/booking"
	"resto-booking/internal/domain/table"
	"resto-booking/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository is the write-side port for the user directory.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	SaveLogin(ctx context.Context, u *user.User) error
}

// TableRepository is the write-side port for the table inventory.
type TableRepository interface {
	Create(ctx context.Context, t *table.Table) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*table.Table, error)
	FindAvailableForUpdate(ctx context.Context, restaurantID string, minSeats int) (*table.Table, error)
	Occupy(ctx context.Context, tableID, bookingID uuid.UUID, now time.Time) error
	Release(ctx context.Context, tableID uuid.UUID, now time.Time) error
	Save(ctx context.Context, t *table.Table) error
}

// BookingRepository is the write-side port for booking records.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Save(ctx context.Context, b *booking.Booking) error
}

// OutboxRepository stages event payloads inside the business transaction.
type OutboxRepository interface {
	Enqueue(ctx context.Context, topic string, payload []byte, now time.Time) (uuid.UUID, error)
	MarkPublished(ctx context.Context, id uuid.UUID, now time.Time) error
}

// Tx exposes transaction-bound repositories.
type Tx interface {
	Users() UserRepository
	Tables() TableRepository
	Bookings() BookingRepository
	Outbox() OutboxRepository
}

// UnitOfWork runs fn inside one database transaction; every repository
// obtained from the Tx shares it. fn returning an error rolls everything
// back.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
