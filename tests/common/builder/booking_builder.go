//go:build unit || e2e

package builder

import (
	"time"

	dombooking "resto-booking/internal/domain/booking"
	reqdto "resto-booking/internal/handler/dto/request"
	"resto-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	RestaurantID  string
	NoOfPeople    int
	TimeSlot      string
	BookingInfo   map[string]any
	CustomerName  string
	CustomerEmail string
	Status        dombooking.Status
	TableID       *uuid.UUID
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	tableID := uuid.New()
	return &BookingBuilder{
		ID:            uuid.New(),
		RestaurantID:  "R1",
		NoOfPeople:    2,
		TimeSlot:      "2025-01-01 19:00",
		BookingInfo:   map[string]any{},
		CustomerName:  "Alice",
		CustomerEmail: "a@x.com",
		Status:        dombooking.StatusConfirmed,
		TableID:       &tableID,
		Now:           time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithPeople(n int) *BookingBuilder {
	b.NoOfPeople = n
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithInfo(info map[string]any) *BookingBuilder {
	b.BookingInfo = info
	return b
}

func (b *BookingBuilder) WithCustomer(name, email string) *BookingBuilder {
	b.CustomerName = name
	b.CustomerEmail = email
	return b
}

func (b *BookingBuilder) WithTable(tableID uuid.UUID) *BookingBuilder {
	b.TableID = &tableID
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewSlot(b.TimeSlot)
	if err != nil {
		return nil, err
	}
	var tableID uuid.UUID
	if b.TableID != nil {
		tableID = *b.TableID
	}
	return dombooking.NewBooking(
		b.RestaurantID, b.NoOfPeople, slot,
		b.CustomerName, b.CustomerEmail,
		dombooking.Info(b.BookingInfo),
		tableID, b.Now,
	)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.Reconstruct(
		b.ID, b.RestaurantID, b.NoOfPeople,
		dombooking.Slot(b.TimeSlot), dombooking.Info(b.BookingInfo),
		b.CustomerName, b.CustomerEmail,
		b.Status, b.TableID, b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RestaurantID:  b.RestaurantID,
		NoOfPeople:    b.NoOfPeople,
		TimeSlot:      b.TimeSlot,
		BookingInfo:   b.BookingInfo,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		RestaurantID:  b.RestaurantID,
		NoOfPeople:    b.NoOfPeople,
		TimeSlot:      b.TimeSlot,
		BookingInfo:   b.BookingInfo,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Status:        b.Status.String(),
		TableID:       b.TableID,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}
