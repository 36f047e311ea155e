package queries

import (
	"context"

	"resto-booking/internal/infra"
	"resto-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForCustomer(ctx context.Context, email string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore     BookingReadStore
	userReadStore UserReadStore
}

func NewBookingQueries(readStore BookingReadStore, userReadStore UserReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore:     readStore,
		userReadStore: userReadStore,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ListForCustomer returns the customer's bookings, newest first. A known
// customer with no bookings gets an empty list; an unknown customer is an
// error.
func (q *bookingQueriesImpl) ListForCustomer(ctx context.Context, email string) ([]*BookingView, error) {
	if _, err := q.userReadStore.FindByEmail(ctx, email); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views, err := q.readStore.FindByCustomerEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
