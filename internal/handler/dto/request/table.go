package request

import (
	"time"

	"resto-booking/internal/domain/table"
)

type CreateTableRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	Seats        int    `json:"seats" binding:"required,gt=0"`
}

func (r CreateTableRequest) ToDomain(now time.Time) (*table.Table, error) {
	return table.NewTable(r.RestaurantID, r.Seats, now)
}

type UpdateTableRequest struct {
	Seats  *int    `json:"seats,omitempty" binding:"omitempty,gt=0"`
	Status *string `json:"status,omitempty"`
}

func (r UpdateTableRequest) IsEmpty() bool {
	return r.Seats == nil && r.Status == nil
}
