//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"time"

	"resto-booking/internal/domain/booking"
	"resto-booking/internal/domain/table"
	"resto-booking/internal/domain/user"
	"resto-booking/internal/infra"
	"resto-booking/internal/usecase/queries"
	"resto-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW hands every callback the same transaction-bound mocks; the
// commands under test never see a real database.
type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeTx struct {
	users    *MockUserRepository
	tables   *MockTableRepository
	bookings *MockBookingRepository
	outbox   *MockOutboxRepository
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		users:    &MockUserRepository{},
		tables:   &MockTableRepository{},
		bookings: &MockBookingRepository{},
		outbox:   &MockOutboxRepository{},
	}
}

func (t *fakeTx) Users() shared.UserRepository       { return t.users }
func (t *fakeTx) Tables() shared.TableRepository     { return t.tables }
func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Outbox() shared.OutboxRepository    { return t.outbox }

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) SaveLogin(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Create(ctx context.Context, t *table.Table) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTableRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*table.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) FindAvailableForUpdate(ctx context.Context, restaurantID string, minSeats int) (*table.Table, error) {
	args := m.Called(ctx, restaurantID, minSeats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) Occupy(ctx context.Context, tableID, bookingID uuid.UUID, now time.Time) error {
	return m.Called(ctx, tableID, bookingID, now).Error(0)
}

func (m *MockTableRepository) Release(ctx context.Context, tableID uuid.UUID, now time.Time) error {
	return m.Called(ctx, tableID, now).Error(0)
}

func (m *MockTableRepository) Save(ctx context.Context, t *table.Table) error {
	return m.Called(ctx, t).Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

type MockOutboxRepository struct {
	mock.Mock
}

func (m *MockOutboxRepository) Enqueue(ctx context.Context, topic string, payload []byte, now time.Time) (uuid.UUID, error) {
	args := m.Called(ctx, topic, payload, now)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, now time.Time) error {
	return m.Called(ctx, id, now).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingCreated(ctx context.Context, key string, payload []byte) error {
	return m.Called(ctx, key, payload).Error(0)
}

type MockBookingQueries struct {
	mock.Mock
}

func (m *MockBookingQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.BookingView), args.Error(1)
}

func (m *MockBookingQueries) ListForCustomer(ctx context.Context, email string) ([]*queries.BookingView, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.BookingView), args.Error(1)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}

func duplicateKeyErr(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, msg, nil)
}

func conflictErr(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindConflict, msg, nil)
}
