package table

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeats        = errors.New("seats must be a positive integer")
	ErrRestaurantRequired  = errors.New("restaurant id is required")
	ErrNotAvailable        = errors.New("table is not available")
	ErrOccupied            = errors.New("table is occupied")
	ErrInvalidStatus       = errors.New("invalid table status")
	ErrStatusNotAssignable = errors.New("status cannot be assigned directly")
)

// Table is a seating unit owned by a restaurant. A table is exclusively
// linked to at most one active booking: bookingID is set iff the status is
// OCCUPIED.
type Table struct {
	id           uuid.UUID
	restaurantID string
	seats        int
	status       Status
	bookingID    *uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTable(restaurantID string, seats int, now time.Time) (*Table, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return nil, ErrRestaurantRequired
	}
	if seats <= 0 {
		return nil, ErrInvalidSeats
	}

	return &Table{
		id:           uuid.New(),
		restaurantID: restaurantID,
		seats:        seats,
		status:       StatusAvailable,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	restaurantID string,
	seats int,
	status Status,
	bookingID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Table {
	return &Table{
		id:           id,
		restaurantID: restaurantID,
		seats:        seats,
		status:       status,
		bookingID:    bookingID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Occupy links the table to a booking. Only an AVAILABLE table can be
// claimed; callers losing the race get ErrNotAvailable.
func (t *Table) Occupy(bookingID uuid.UUID, now time.Time) error {
	if t.status != StatusAvailable {
		return ErrNotAvailable
	}
	t.status = StatusOccupied
	t.bookingID = &bookingID
	t.updatedAt = now
	return nil
}

// Release returns the table to AVAILABLE. Releasing an already-available
// table is a no-op success.
func (t *Table) Release(now time.Time) {
	if t.status == StatusAvailable && t.bookingID == nil {
		return
	}
	t.status = StatusAvailable
	t.bookingID = nil
	t.updatedAt = now
}

// SetStatus assigns AVAILABLE or BLOCKED through the update path. An
// occupied table must be released through its booking first.
func (t *Table) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if !status.IsSettable() {
		return ErrStatusNotAssignable
	}
	if t.status == StatusOccupied {
		return ErrOccupied
	}
	t.status = status
	t.updatedAt = now
	return nil
}

func (t *Table) Resize(seats int, now time.Time) error {
	if seats <= 0 {
		return ErrInvalidSeats
	}
	t.seats = seats
	t.updatedAt = now
	return nil
}

func (t *Table) IsAvailable() bool {
	return t.status == StatusAvailable
}

func (t *Table) CanSeat(people int) bool {
	return t.seats >= people
}

// LinkConsistent verifies the occupancy invariant: a booking link exists
// exactly when the table reports OCCUPIED.
func (t *Table) LinkConsistent() bool {
	return (t.bookingID != nil) == (t.status == StatusOccupied)
}

func (t *Table) ID() uuid.UUID         { return t.id }
func (t *Table) RestaurantID() string  { return t.restaurantID }
func (t *Table) Seats() int            { return t.seats }
func (t *Table) Status() Status        { return t.status }
func (t *Table) BookingID() *uuid.UUID { return t.bookingID }
func (t *Table) CreatedAt() time.Time  { return t.createdAt }
func (t *Table) UpdatedAt() time.Time  { return t.updatedAt }
