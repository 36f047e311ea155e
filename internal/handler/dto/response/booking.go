package response

import (
	"time"

	"resto-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID      `json:"id"`
	RestaurantID  string         `json:"restaurant_id"`
	NoOfPeople    int            `json:"no_of_people"`
	TimeSlot      string         `json:"time_slot"`
	BookingInfo   map[string]any `json:"booking_info"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Status        string         `json:"status"`
	TableID       *uuid.UUID     `json:"table_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type ClearBookingResponse struct {
	BookingID uuid.UUID  `json:"booking_id"`
	TableID   *uuid.UUID `json:"table_id,omitempty"`
	Cleared   bool       `json:"cleared"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromBookingView(rm)
	}
	return resps
}
