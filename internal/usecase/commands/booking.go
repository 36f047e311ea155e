package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"resto-booking/internal/domain/booking"
	reqdto "resto-booking/internal/handler/dto/request"
	"resto-booking/internal/infra"
	"resto-booking/internal/pkg/clock"
	"resto-booking/internal/pkg/errs"
	"resto-booking/internal/usecase/queries"
	"resto-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateBookingResult struct {
	Booking  *queries.BookingView
	NoChange bool
}

type ClearBookingResult struct {
	BookingID uuid.UUID
	TableID   *uuid.UUID
	Cleared   bool
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) (*UpdateBookingResult, error)
	Clear(ctx context.Context, id uuid.UUID) (*ClearBookingResult, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	publisher      EventPublisher
	eventTopic     string
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	publisher EventPublisher,
	eventTopic string,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		publisher:      publisher,
		eventTopic:     eventTopic,
		clock:          clock,
	}
}

// Create allocates a table and confirms the booking in one transaction.
// Candidate rows are locked with SKIP LOCKED, so concurrent requests each
// claim a distinct table; when none fit the party the caller gets
// ErrNoAvailableTable.
func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	var (
		bookingID uuid.UUID
		outboxID  uuid.UUID
		payload   []byte
	)

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := b.clock.Now()

		candidate, findErr := tx.Tables().FindAvailableForUpdate(ctx, req.RestaurantID, req.NoOfPeople)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, errs.ErrNoAvailableTable)
			}
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}

		entity, domainErr := req.ToDomain(candidate.ID(), now)
		if domainErr != nil {
			return errs.Mark(domainErr, errs.ErrDomainValidation)
		}

		if createErr := tx.Bookings().Create(ctx, entity); createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}

		if occupyErr := tx.Tables().Occupy(ctx, candidate.ID(), entity.ID(), now); occupyErr != nil {
			if infra.IsKind(occupyErr, infra.KindConflict) {
				return errs.Mark(occupyErr, errs.ErrNoAvailableTable)
			}
			return errs.Mark(occupyErr, errs.ErrDatabaseOperationFailed)
		}

		var marshalErr error
		payload, marshalErr = bookingCreatedPayload(entity, now)
		if marshalErr != nil {
			// Encoding faults are not storage faults; surface as internal.
			return errs.Wrap(marshalErr, "failed to encode booking event payload")
		}

		var enqueueErr error
		outboxID, enqueueErr = tx.Outbox().Enqueue(ctx, b.eventTopic, payload, now)
		if enqueueErr != nil {
			return errs.Mark(enqueueErr, errs.ErrDatabaseOperationFailed)
		}

		bookingID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.publishCreated(ctx, bookingID, outboxID, payload)

	return b.bookingQueries.GetByID(ctx, bookingID)
}

// publishCreated pushes the event right away so consumers do not wait for
// the outbox sweep. Failures only log; the pending outbox row keeps the
// event recoverable.
func (b *bookingCommandsImpl) publishCreated(ctx context.Context, bookingID, outboxID uuid.UUID, payload []byte) {
	if err := b.publisher.PublishBookingCreated(ctx, bookingID.String(), payload); err != nil {
		slog.Warn("failed to publish booking event, left pending in outbox",
			"booking_id", bookingID, "outbox_id", outboxID, "error", err.Error())
		return
	}

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().MarkPublished(ctx, outboxID, b.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to mark outbox event published",
			"outbox_id", outboxID, "error", err.Error())
	}
}

// Update applies the patch and reports whether anything actually changed.
// Cancelling routes through the same release path as Clear so the table and
// the booking stay linked consistently.
func (b *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) (*UpdateBookingResult, error) {
	noChange := true

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, errs.ErrBookingNotFound)
			}
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}

		if req.IsEmpty() {
			return nil
		}
		if entity.IsCancelled() {
			return errs.Mark(booking.ErrAlreadyCancelled, errs.ErrBookingCancelled)
		}

		now := b.clock.Now()
		changed := false

		if req.Status != nil {
			status := booking.Status(*req.Status)
			if !status.IsValid() {
				return errs.Mark(booking.ErrInvalidStatus, errs.ErrInvalidBookingStatus)
			}
			before := entity.Status()
			if transErr := entity.Transition(status, now); transErr != nil {
				return errs.Mark(transErr, errs.ErrBookingCancelled)
			}
			if entity.Status() != before {
				changed = true
				if entity.IsCancelled() {
					if releaseErr := b.releaseLinkedTable(ctx, tx, entity, now); releaseErr != nil {
						return releaseErr
					}
				}
			}
		}

		// The booking row is the source of truth for table assignment; the
		// occupancy swap on the table side is its own operation.
		if req.TableID != nil && entity.RelinkTable(*req.TableID, now) {
			changed = true
		}
		if len(req.BookingInfo) > 0 && entity.MergeInfo(booking.Info(req.BookingInfo), now) {
			changed = true
		}
		if req.CustomerName != nil && entity.Rename(*req.CustomerName, now) {
			changed = true
		}
		if req.CustomerEmail != nil {
			emailChanged, emailErr := entity.Reassign(*req.CustomerEmail, now)
			if emailErr != nil {
				return errs.Mark(emailErr, errs.ErrDomainValidation)
			}
			if emailChanged {
				changed = true
			}
		}

		if !changed {
			return nil
		}
		noChange = false

		if saveErr := tx.Bookings().Save(ctx, entity); saveErr != nil {
			return errs.Mark(saveErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := b.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UpdateBookingResult{Booking: view, NoChange: noChange}, nil
}

// Clear releases the booking's table and cancels the booking in one
// transaction. Clearing an already-cancelled booking is a no-op success;
// a booking whose table row vanished is a data-integrity fault.
func (b *bookingCommandsImpl) Clear(ctx context.Context, id uuid.UUID) (*ClearBookingResult, error) {
	result := &ClearBookingResult{BookingID: id}

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, errs.ErrBookingNotFound)
			}
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}

		result.TableID = entity.TableID()

		if entity.IsCancelled() {
			result.Cleared = false
			return nil
		}

		now := b.clock.Now()

		if linked := entity.TableID(); linked != nil {
			if _, tblErr := tx.Tables().FindByIDForUpdate(ctx, *linked); tblErr != nil {
				if infra.IsKind(tblErr, infra.KindNotFound) {
					return errs.Mark(tblErr, errs.ErrTableNotFound)
				}
				return errs.Mark(tblErr, errs.ErrDatabaseOperationFailed)
			}
			if releaseErr := tx.Tables().Release(ctx, *linked, now); releaseErr != nil {
				return errs.Mark(releaseErr, errs.ErrDatabaseOperationFailed)
			}
		}

		if cancelErr := entity.Cancel(now); cancelErr != nil {
			return errs.Mark(cancelErr, errs.ErrBookingCancelled)
		}
		if saveErr := tx.Bookings().Save(ctx, entity); saveErr != nil {
			return errs.Mark(saveErr, errs.ErrDatabaseOperationFailed)
		}
		result.Cleared = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (b *bookingCommandsImpl) releaseLinkedTable(ctx context.Context, tx shared.Tx, entity *booking.Booking, now time.Time) error {
	linked := entity.TableID()
	if linked == nil {
		return nil
	}
	if err := tx.Tables().Release(ctx, *linked, now); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("booking linked to missing table, cancelling anyway",
				"booking_id", entity.ID(), "table_id", *linked)
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func bookingCreatedPayload(entity *booking.Booking, now time.Time) ([]byte, error) {
	return json.Marshal(map[string]any{
		"event":          "booking_created",
		"booking_id":     entity.ID(),
		"restaurant_id":  entity.RestaurantID(),
		"table_id":       entity.TableID(),
		"no_of_people":   entity.NoOfPeople(),
		"time_slot":      entity.Slot().String(),
		"booking_info":   entity.Info(),
		"customer_email": entity.CustomerEmail(),
		"status":         string(entity.Status()),
		"occurred_at":    now.UTC(),
	})
}
