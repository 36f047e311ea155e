package request

import (
	"time"

	"resto-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RestaurantID  string         `json:"restaurant_id" binding:"required"`
	NoOfPeople    int            `json:"no_of_people" binding:"required,gt=0"`
	TimeSlot      string         `json:"time_slot" binding:"required"`
	BookingInfo   map[string]any `json:"booking_info,omitempty"`
	CustomerName  string         `json:"customer_name,omitempty"`
	CustomerEmail string         `json:"customer_email" binding:"required,email"`
}

// ToDomain builds the booking entity once a table has been allocated for it.
func (r CreateBookingRequest) ToDomain(tableID uuid.UUID, now time.Time) (*booking.Booking, error) {
	slot, err := booking.NewSlot(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(
		r.RestaurantID,
		r.NoOfPeople,
		slot,
		r.CustomerName,
		r.CustomerEmail,
		booking.Info(r.BookingInfo),
		tableID,
		now,
	)
}

type UpdateBookingRequest struct {
	Status        *string        `json:"status,omitempty"`
	TableID       *uuid.UUID     `json:"table_id,omitempty"`
	BookingInfo   map[string]any `json:"booking_info,omitempty"`
	CustomerName  *string        `json:"customer_name,omitempty"`
	CustomerEmail *string        `json:"customer_email,omitempty" binding:"omitempty,email"`
}

func (r UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.TableID == nil && len(r.BookingInfo) == 0 &&
		r.CustomerName == nil && r.CustomerEmail == nil
}
