package queries

import (
	"context"

	"resto-booking/internal/infra"
	"resto-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type TableReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TableView, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*TableView, error)
}

type TableQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TableView, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*TableView, error)
}

type tableQueriesImpl struct {
	readStore TableReadStore
}

func NewTableQueries(readStore TableReadStore) TableQueries {
	return &tableQueriesImpl{readStore: readStore}
}

func (q *tableQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TableView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTableNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *tableQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID string) ([]*TableView, error) {
	views, err := q.readStore.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
