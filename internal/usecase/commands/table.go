package commands

import (
	"context"

	"resto-booking/internal/domain/table"
	reqdto "resto-booking/internal/handler/dto/request"
	"resto-booking/internal/infra"
	"resto-booking/internal/pkg/clock"
	"resto-booking/internal/pkg/errs"
	"resto-booking/internal/pkg/patch"
	"resto-booking/internal/usecase/queries"
	"resto-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type TableCommands interface {
	Create(ctx context.Context, req reqdto.CreateTableRequest) (*queries.TableView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateTableRequest) (*queries.TableView, error)
}

type tableCommandsImpl struct {
	uow          shared.UnitOfWork
	tableQueries queries.TableQueries
	clock        clock.Clock
}

func NewTableCommands(uow shared.UnitOfWork, tableQueries queries.TableQueries, clock clock.Clock) TableCommands {
	return &tableCommandsImpl{
		uow:          uow,
		tableQueries: tableQueries,
		clock:        clock,
	}
}

func (t *tableCommandsImpl) Create(ctx context.Context, req reqdto.CreateTableRequest) (*queries.TableView, error) {
	entity, err := req.ToDomain(t.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if createErr := tx.Tables().Create(ctx, entity); createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t.tableQueries.GetByID(ctx, entity.ID())
}

// Update changes seats and the settable part of the status. An occupied
// table rejects status edits until its booking releases it.
func (t *tableCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateTableRequest) (*queries.TableView, error) {
	if req.IsEmpty() {
		return nil, errs.Mark(errs.New("no fields to update"), errs.ErrDomainValidation)
	}

	err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Tables().FindByIDForUpdate(ctx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, errs.ErrTableNotFound)
			}
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}

		now := t.clock.Now()
		if seats := patch.Coalesce(req.Seats, entity.Seats()); seats != entity.Seats() {
			if resizeErr := entity.Resize(seats, now); resizeErr != nil {
				return errs.Mark(resizeErr, errs.ErrInvalidSeats)
			}
		}
		if req.Status != nil {
			if setErr := entity.SetStatus(table.Status(*req.Status), now); setErr != nil {
				switch setErr {
				case table.ErrOccupied:
					return errs.Mark(setErr, errs.ErrTableConflict)
				default:
					return errs.Mark(setErr, errs.ErrInvalidTableStatus)
				}
			}
		}

		if saveErr := tx.Tables().Save(ctx, entity); saveErr != nil {
			return errs.Mark(saveErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t.tableQueries.GetByID(ctx, id)
}
