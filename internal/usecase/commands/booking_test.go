//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"resto-booking/internal/domain/booking"
	reqdto "resto-booking/internal/handler/dto/request"
	"resto-booking/internal/pkg/clock"
	"resto-booking/internal/pkg/errs"
	"resto-booking/internal/usecase/commands"
	"resto-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTopic = "booking_events"

func newBookingCommands(tx *fakeTx, bq *MockBookingQueries, pub *MockEventPublisher, now time.Time) commands.BookingCommands {
	return commands.NewBookingCommands(&fakeUoW{tx: tx}, bq, pub, testTopic, clock.NewMockClock(now))
}

func TestCreateBooking(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	req := builder.NewBookingBuilder().BuildCreateRequest()

	t.Run("allocates a table and publishes", func(t *testing.T) {
		tbl := builder.NewTableBuilder().BuildReconstructed()
		view := builder.NewBookingBuilder().WithTable(tbl.ID()).BuildView()
		outboxID := uuid.New()

		tx := newFakeTx()
		tx.tables.On("FindAvailableForUpdate", mock.Anything, "R1", 2).Return(tbl, nil).Once()
		tx.bookings.On("Create", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
		tx.tables.On("Occupy", mock.Anything, tbl.ID(), mock.AnythingOfType("uuid.UUID"), now).Return(nil).Once()
		tx.outbox.On("Enqueue", mock.Anything, testTopic, mock.AnythingOfType("[]uint8"), now).Return(outboxID, nil).Once()
		tx.outbox.On("MarkPublished", mock.Anything, outboxID, now).Return(nil).Once()

		pub := &MockEventPublisher{}
		pub.On("PublishBookingCreated", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil).Once()

		bq := &MockBookingQueries{}
		bq.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(view, nil).Once()

		uc := newBookingCommands(tx, bq, pub, now)
		got, err := uc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, view, got)
		tx.tables.AssertExpectations(t)
		tx.bookings.AssertExpectations(t)
		tx.outbox.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("no candidate table", func(t *testing.T) {
		tx := newFakeTx()
		tx.tables.On("FindAvailableForUpdate", mock.Anything, "R1", 2).Return(nil, notFoundErr("no table")).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		_, err := uc.Create(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrNoAvailableTable)
		tx.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost claim surfaces as no available table", func(t *testing.T) {
		tbl := builder.NewTableBuilder().BuildReconstructed()

		tx := newFakeTx()
		tx.tables.On("FindAvailableForUpdate", mock.Anything, "R1", 2).Return(tbl, nil).Once()
		tx.bookings.On("Create", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
		tx.tables.On("Occupy", mock.Anything, tbl.ID(), mock.AnythingOfType("uuid.UUID"), now).Return(conflictErr("table not available")).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		_, err := uc.Create(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrNoAvailableTable)
	})

	t.Run("unencodable event payload is not a database failure", func(t *testing.T) {
		tbl := builder.NewTableBuilder().BuildReconstructed()
		badReq := builder.NewBookingBuilder().
			WithInfo(map[string]any{"note": make(chan int)}).
			BuildCreateRequest()

		tx := newFakeTx()
		tx.tables.On("FindAvailableForUpdate", mock.Anything, "R1", 2).Return(tbl, nil).Once()
		tx.bookings.On("Create", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
		tx.tables.On("Occupy", mock.Anything, tbl.ID(), mock.AnythingOfType("uuid.UUID"), now).Return(nil).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		_, err := uc.Create(context.Background(), badReq)

		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		tx.outbox.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		tbl := builder.NewTableBuilder().BuildReconstructed()
		view := builder.NewBookingBuilder().WithTable(tbl.ID()).BuildView()

		tx := newFakeTx()
		tx.tables.On("FindAvailableForUpdate", mock.Anything, "R1", 2).Return(tbl, nil).Once()
		tx.bookings.On("Create", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
		tx.tables.On("Occupy", mock.Anything, tbl.ID(), mock.AnythingOfType("uuid.UUID"), now).Return(nil).Once()
		tx.outbox.On("Enqueue", mock.Anything, testTopic, mock.AnythingOfType("[]uint8"), now).Return(uuid.New(), nil).Once()

		pub := &MockEventPublisher{}
		pub.On("PublishBookingCreated", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).
			Return(assert.AnError).Once()

		bq := &MockBookingQueries{}
		bq.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(view, nil).Once()

		uc := newBookingCommands(tx, bq, pub, now)
		got, err := uc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, view, got)
		// the outbox row stays pending when the broker is down
		tx.outbox.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateBooking(t *testing.T) {
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	t.Run("merging info reports a change", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithInfo(map[string]any{"wine": 1}).BuildReconstructed()
		view := builder.NewBookingBuilder().BuildView()

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()
		tx.bookings.On("Save", mock.Anything, b).Return(nil).Once()

		bq := &MockBookingQueries{}
		bq.On("GetByID", mock.Anything, b.ID()).Return(view, nil).Once()

		uc := newBookingCommands(tx, bq, &MockEventPublisher{}, now)
		result, err := uc.Update(context.Background(), b.ID(), reqdto.UpdateBookingRequest{
			BookingInfo: map[string]any{"water": 2},
		})

		require.NoError(t, err)
		assert.False(t, result.NoChange)
		assert.Equal(t, 1, b.Info()["wine"])
		assert.Equal(t, 2, b.Info()["water"])
	})

	t.Run("identical info reports no change", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithInfo(map[string]any{"wine": 1}).BuildReconstructed()
		view := builder.NewBookingBuilder().BuildView()

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()

		bq := &MockBookingQueries{}
		bq.On("GetByID", mock.Anything, b.ID()).Return(view, nil).Once()

		uc := newBookingCommands(tx, bq, &MockEventPublisher{}, now)
		result, err := uc.Update(context.Background(), b.ID(), reqdto.UpdateBookingRequest{
			BookingInfo: map[string]any{"wine": 1},
		})

		require.NoError(t, err)
		assert.True(t, result.NoChange)
		tx.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("relinking a table and reassigning the customer", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		view := builder.NewBookingBuilder().BuildView()
		nextTable := uuid.New()
		email := "b@x.com"

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()
		tx.bookings.On("Save", mock.Anything, b).Return(nil).Once()

		bq := &MockBookingQueries{}
		bq.On("GetByID", mock.Anything, b.ID()).Return(view, nil).Once()

		uc := newBookingCommands(tx, bq, &MockEventPublisher{}, now)
		result, err := uc.Update(context.Background(), b.ID(), reqdto.UpdateBookingRequest{
			TableID:       &nextTable,
			CustomerEmail: &email,
		})

		require.NoError(t, err)
		assert.False(t, result.NoChange)
		require.NotNil(t, b.TableID())
		assert.Equal(t, nextTable, *b.TableID())
		assert.Equal(t, email, b.CustomerEmail())
	})

	t.Run("blank customer email is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		blank := "   "

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		_, err := uc.Update(context.Background(), b.ID(), reqdto.UpdateBookingRequest{
			CustomerEmail: &blank,
		})

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
		tx.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("cancelling releases the table", func(t *testing.T) {
		tableID := uuid.New()
		b := builder.NewBookingBuilder().WithTable(tableID).BuildReconstructed()
		view := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildView()
		cancelled := booking.StatusCancelled.String()

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()
		tx.tables.On("Release", mock.Anything, tableID, now).Return(nil).Once()
		tx.bookings.On("Save", mock.Anything, b).Return(nil).Once()

		bq := &MockBookingQueries{}
		bq.On("GetByID", mock.Anything, b.ID()).Return(view, nil).Once()

		uc := newBookingCommands(tx, bq, &MockEventPublisher{}, now)
		result, err := uc.Update(context.Background(), b.ID(), reqdto.UpdateBookingRequest{
			Status: &cancelled,
		})

		require.NoError(t, err)
		assert.False(t, result.NoChange)
		assert.True(t, b.IsCancelled())
		tx.tables.AssertExpectations(t)
	})

	t.Run("cancelled booking rejects edits", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildReconstructed()

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		_, err := uc.Update(context.Background(), b.ID(), reqdto.UpdateBookingRequest{
			BookingInfo: map[string]any{"wine": 1},
		})

		assert.ErrorIs(t, err, errs.ErrBookingCancelled)
	})

	t.Run("unknown booking", func(t *testing.T) {
		id := uuid.New()
		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, id).Return(nil, notFoundErr("booking not found")).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		_, err := uc.Update(context.Background(), id, reqdto.UpdateBookingRequest{
			BookingInfo: map[string]any{"wine": 1},
		})

		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestClearBooking(t *testing.T) {
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	t.Run("cancels the booking and frees the table", func(t *testing.T) {
		tbl := builder.NewTableBuilder().BuildReconstructed()
		b := builder.NewBookingBuilder().WithTable(tbl.ID()).BuildReconstructed()

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()
		tx.tables.On("FindByIDForUpdate", mock.Anything, tbl.ID()).Return(tbl, nil).Once()
		tx.tables.On("Release", mock.Anything, tbl.ID(), now).Return(nil).Once()
		tx.bookings.On("Save", mock.Anything, b).Return(nil).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		result, err := uc.Clear(context.Background(), b.ID())

		require.NoError(t, err)
		assert.True(t, result.Cleared)
		assert.True(t, b.IsCancelled())
		require.NotNil(t, result.TableID)
		assert.Equal(t, tbl.ID(), *result.TableID)
	})

	t.Run("clearing twice is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildReconstructed()

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		result, err := uc.Clear(context.Background(), b.ID())

		require.NoError(t, err)
		assert.False(t, result.Cleared)
		tx.tables.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing linked table is a data fault", func(t *testing.T) {
		tableID := uuid.New()
		b := builder.NewBookingBuilder().WithTable(tableID).BuildReconstructed()

		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, b.ID()).Return(b, nil).Once()
		tx.tables.On("FindByIDForUpdate", mock.Anything, tableID).Return(nil, notFoundErr("table not found")).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		_, err := uc.Clear(context.Background(), b.ID())

		assert.ErrorIs(t, err, errs.ErrTableNotFound)
		assert.False(t, b.IsCancelled())
	})

	t.Run("unknown booking", func(t *testing.T) {
		id := uuid.New()
		tx := newFakeTx()
		tx.bookings.On("FindByIDForUpdate", mock.Anything, id).Return(nil, notFoundErr("booking not found")).Once()

		uc := newBookingCommands(tx, &MockBookingQueries{}, &MockEventPublisher{}, now)
		_, err := uc.Clear(context.Background(), id)

		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
