package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
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

type TableView struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Seats        int        `json:"seats"`
	Status       string     `json:"status"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}
