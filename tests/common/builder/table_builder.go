//go:build unit || e2e

package builder

import (
	"time"

	domtable "resto-booking/internal/domain/table"
	reqdto "resto-booking/internal/handler/dto/request"
	"resto-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TableBuilder struct {
	ID           uuid.UUID
	RestaurantID string
	Seats        int
	Status       domtable.Status
	BookingID    *uuid.UUID
	Now          time.Time
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		ID:           uuid.New(),
		RestaurantID: "R1",
		Seats:        4,
		Status:       domtable.StatusAvailable,
		Now:          time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *TableBuilder) WithRestaurant(id string) *TableBuilder {
	b.RestaurantID = id
	return b
}

func (b *TableBuilder) WithSeats(seats int) *TableBuilder {
	b.Seats = seats
	return b
}

func (b *TableBuilder) WithStatus(status domtable.Status) *TableBuilder {
	b.Status = status
	return b
}

func (b *TableBuilder) WithBooking(bookingID uuid.UUID) *TableBuilder {
	b.Status = domtable.StatusOccupied
	b.BookingID = &bookingID
	return b
}

func (b *TableBuilder) BuildDomain() (*domtable.Table, error) {
	return domtable.NewTable(b.RestaurantID, b.Seats, b.Now)
}

func (b *TableBuilder) BuildReconstructed() *domtable.Table {
	return domtable.Reconstruct(b.ID, b.RestaurantID, b.Seats, b.Status, b.BookingID, b.Now, b.Now)
}

func (b *TableBuilder) BuildCreateRequest() reqdto.CreateTableRequest {
	return reqdto.CreateTableRequest{
		RestaurantID: b.RestaurantID,
		Seats:        b.Seats,
	}
}

func (b *TableBuilder) BuildView() *queries.TableView {
	return &queries.TableView{
		ID:           b.ID,
		RestaurantID: b.RestaurantID,
		Seats:        b.Seats,
		Status:       b.Status.String(),
		BookingID:    b.BookingID,
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}
