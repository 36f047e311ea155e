package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartySize   = errors.New("party size must be a positive integer")
	ErrRestaurantRequired = errors.New("restaurant id is required")
	ErrCustomerRequired   = errors.New("customer email is required")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrAlreadyCancelled   = errors.New("booking is cancelled")
)

// Booking owns the allocation lifecycle: it is created CONFIRMED against an
// allocated table and ends CANCELLED, which is terminal. The booking record
// is the source of truth for which table is assigned.
type Booking struct {
	id            uuid.UUID
	restaurantID  string
	noOfPeople    int
	slot          Slot
	info          Info
	customerName  string
	customerEmail string
	status        Status
	tableID       *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	restaurantID string,
	noOfPeople int,
	slot Slot,
	customerName, customerEmail string,
	info Info,
	tableID uuid.UUID,
	now time.Time,
) (*Booking, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return nil, ErrRestaurantRequired
	}
	if noOfPeople <= 0 {
		return nil, ErrInvalidPartySize
	}
	customerEmail = strings.TrimSpace(strings.ToLower(customerEmail))
	if customerEmail == "" {
		return nil, ErrCustomerRequired
	}
	if info == nil {
		info = Info{}
	}

	return &Booking{
		id:            uuid.New(),
		restaurantID:  restaurantID,
		noOfPeople:    noOfPeople,
		slot:          slot,
		info:          info,
		customerName:  strings.TrimSpace(customerName),
		customerEmail: customerEmail,
		status:        StatusConfirmed,
		tableID:       &tableID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	restaurantID string,
	noOfPeople int,
	slot Slot,
	info Info,
	customerName, customerEmail string,
	status Status,
	tableID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	if info == nil {
		info = Info{}
	}
	return &Booking{
		id:            id,
		restaurantID:  restaurantID,
		noOfPeople:    noOfPeople,
		slot:          slot,
		info:          info,
		customerName:  customerName,
		customerEmail: customerEmail,
		status:        status,
		tableID:       tableID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Transition moves the booking to the given status. CANCELLED is terminal:
// no transition out of it is permitted, not even to CANCELLED again.
func (b *Booking) Transition(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if b.status.IsTerminal() {
		return ErrAlreadyCancelled
	}
	if b.status == status {
		return nil
	}
	b.status = status
	b.updatedAt = now
	return nil
}

// Cancel marks the booking CANCELLED. The caller is responsible for
// releasing the linked table in the same unit of work.
func (b *Booking) Cancel(now time.Time) error {
	return b.Transition(StatusCancelled, now)
}

// MergeInfo overlays entries onto the booking info and reports whether the
// payload changed.
func (b *Booking) MergeInfo(entries Info, now time.Time) bool {
	merged, changed := b.info.Merge(entries)
	if changed {
		b.info = merged
		b.updatedAt = now
	}
	return changed
}

func (b *Booking) Rename(customerName string, now time.Time) bool {
	trimmed := strings.TrimSpace(customerName)
	if trimmed == b.customerName {
		return false
	}
	b.customerName = trimmed
	b.updatedAt = now
	return true
}

func (b *Booking) Reassign(customerEmail string, now time.Time) (bool, error) {
	trimmed := strings.TrimSpace(strings.ToLower(customerEmail))
	if trimmed == "" {
		return false, ErrCustomerRequired
	}
	if trimmed == b.customerEmail {
		return false, nil
	}
	b.customerEmail = trimmed
	b.updatedAt = now
	return true, nil
}

// RelinkTable points the booking at a different table. The table swap itself
// (release + occupy) is coordinated by the caller.
func (b *Booking) RelinkTable(tableID uuid.UUID, now time.Time) bool {
	if b.tableID != nil && *b.tableID == tableID {
		return false
	}
	b.tableID = &tableID
	b.updatedAt = now
	return true
}

func (b *Booking) IsCancelled() bool {
	return b.status.IsTerminal()
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) RestaurantID() string  { return b.restaurantID }
func (b *Booking) NoOfPeople() int       { return b.noOfPeople }
func (b *Booking) Slot() Slot            { return b.slot }
func (b *Booking) Info() Info            { return b.info }
func (b *Booking) CustomerName() string  { return b.customerName }
func (b *Booking) CustomerEmail() string { return b.customerEmail }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) TableID() *uuid.UUID   { return b.tableID }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
