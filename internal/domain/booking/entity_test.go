//go:build unit

package booking_test

import (
	"testing"
	"time"

	"resto-booking/internal/domain/booking"
	"resto-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		tableID := uuid.New()
		actual, err := builder.NewBookingBuilder().WithTable(tableID).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		require.NotNil(t, actual.TableID())
		assert.Equal(t, tableID, *actual.TableID())
		assert.Equal(t, "a@x.com", actual.CustomerEmail())
		assert.NotNil(t, actual.Info())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(b *builder.BookingBuilder)
			errIs  error
		}{
			{
				name:   "zero party size",
				mutate: func(b *builder.BookingBuilder) { b.WithPeople(0) },
				errIs:  booking.ErrInvalidPartySize,
			},
			{
				name:   "negative party size",
				mutate: func(b *builder.BookingBuilder) { b.WithPeople(-1) },
				errIs:  booking.ErrInvalidPartySize,
			},
			{
				name:   "missing customer email",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("Alice", "") },
				errIs:  booking.ErrCustomerRequired,
			},
			{
				name:   "missing restaurant",
				mutate: func(b *builder.BookingBuilder) { b.RestaurantID = "" },
				errIs:  booking.ErrRestaurantRequired,
			},
			{
				name:   "empty slot",
				mutate: func(b *builder.BookingBuilder) { b.TimeSlot = "  " },
				errIs:  booking.ErrEmptySlot,
			},
			{
				name:   "single guest",
				mutate: func(b *builder.BookingBuilder) { b.WithPeople(1) },
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewBookingBuilder()
				tc.mutate(b)
				_, err := b.BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("customer email normalized", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithCustomer("Alice", "  Alice@X.Com ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", actual.CustomerEmail())
	})
}

func TestBookingTransition(t *testing.T) {
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	t.Run("confirmed to cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.True(t, b.IsCancelled())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildReconstructed()

		for _, target := range []booking.Status{
			booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled,
		} {
			err := b.Transition(target, now)
			assert.ErrorIs(t, err, booking.ErrAlreadyCancelled, "transition to %s", target)
		}
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		updated := b.UpdatedAt()

		require.NoError(t, b.Transition(booking.StatusConfirmed, now))
		assert.Equal(t, updated, b.UpdatedAt())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		err := b.Transition(booking.Status("BROKEN"), now)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestBookingMergeInfo(t *testing.T) {
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	t.Run("overlay keeps existing keys", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithInfo(map[string]any{"wine": 1}).BuildReconstructed()

		changed := b.MergeInfo(booking.Info{"water": 2}, now)
		assert.True(t, changed)

		want := booking.Info{"wine": 1, "water": 2}
		if diff := cmp.Diff(want, b.Info()); diff != "" {
			t.Errorf("info mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("existing key is overwritten", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithInfo(map[string]any{"wine": 1}).BuildReconstructed()

		changed := b.MergeInfo(booking.Info{"wine": 3}, now)
		assert.True(t, changed)
		assert.Equal(t, 3, b.Info()["wine"])
	})

	t.Run("identical payload reports no change", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithInfo(map[string]any{"wine": 1}).BuildReconstructed()
		updated := b.UpdatedAt()

		changed := b.MergeInfo(booking.Info{"wine": 1}, now)
		assert.False(t, changed)
		assert.Equal(t, updated, b.UpdatedAt())
	})

	t.Run("empty patch reports no change", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithInfo(map[string]any{"wine": 1}).BuildReconstructed()
		assert.False(t, b.MergeInfo(booking.Info{}, now))
		assert.False(t, b.MergeInfo(nil, now))
	})

	t.Run("nested values compared structurally", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithInfo(map[string]any{"seating": map[string]any{"area": "patio"}}).
			BuildReconstructed()

		changed := b.MergeInfo(booking.Info{"seating": map[string]any{"area": "patio"}}, now)
		assert.False(t, changed)

		changed = b.MergeInfo(booking.Info{"seating": map[string]any{"area": "window"}}, now)
		assert.True(t, changed)
	})
}

func TestBookingRename(t *testing.T) {
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	b := builder.NewBookingBuilder().BuildReconstructed()

	assert.False(t, b.Rename("Alice", now))
	assert.True(t, b.Rename("Bob", now))
	assert.Equal(t, "Bob", b.CustomerName())
	assert.False(t, b.Rename("  Bob  ", now))
}

func TestBookingReassign(t *testing.T) {
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	b := builder.NewBookingBuilder().BuildReconstructed()

	changed, err := b.Reassign("a@x.com", now)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = b.Reassign("  B@X.com ", now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "b@x.com", b.CustomerEmail())

	_, err = b.Reassign("   ", now)
	assert.ErrorIs(t, err, booking.ErrCustomerRequired)
}

func TestBookingRelinkTable(t *testing.T) {
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	b := builder.NewBookingBuilder().BuildReconstructed()

	assert.False(t, b.RelinkTable(*b.TableID(), now))

	next := uuid.New()
	assert.True(t, b.RelinkTable(next, now))
	require.NotNil(t, b.TableID())
	assert.Equal(t, next, *b.TableID())
}
