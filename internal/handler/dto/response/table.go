package response

import (
	"time"

	"resto-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TableResponse struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Seats        int        `json:"seats"`
	Status       string     `json:"status"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromTableView(rm *queries.TableView) *TableResponse {
	var resp TableResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromTableViews(rms []*queries.TableView) []*TableResponse {
	resps := make([]*TableResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromTableView(rm)
	}
	return resps
}
