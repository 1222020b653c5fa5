package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"turfbook/internal/blocks"
	"turfbook/internal/events"
	"turfbook/internal/turfs"
	"turfbook/internal/users"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) AdmitHold(ctx context.Context, booking *Booking, revalidate func(ctx context.Context) error) error {
	// Mirror the real transaction: revalidation runs first, and any
	// error aborts before the insert.
	if err := revalidate(ctx); err != nil {
		return err
	}
	return m.Called(ctx, booking).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockRepository) GetForDate(ctx context.Context, turfID uuid.UUID, date string) ([]Booking, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *mockRepository) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Booking), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) Transition(ctx context.Context, id uuid.UUID, to Status, updates map[string]interface{}) error {
	return m.Called(ctx, id, to, updates).Error(0)
}

func (m *mockRepository) UpsertCustomer(ctx context.Context, name, phone, email string) (*users.User, error) {
	args := m.Called(ctx, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) ReapStaleHolds(ctx context.Context, turfID uuid.UUID, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, turfID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type mockTurfProvider struct {
	mock.Mock
}

func (m *mockTurfProvider) GetByID(ctx context.Context, id uuid.UUID) (*turfs.Turf, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*turfs.Turf), args.Error(1)
}

type mockBlockSource struct {
	mock.Mock
}

func (m *mockBlockSource) CoveringEntries(ctx context.Context, turfID uuid.UUID, date string) ([]blocks.BlockedEntry, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blocks.BlockedEntry), args.Error(1)
}

func (m *mockBlockSource) IsBlocked(ctx context.Context, turfID uuid.UUID, date string, startMin, endMin, increment int) (bool, error) {
	args := m.Called(ctx, turfID, date, startMin, endMin, increment)
	return args.Bool(0), args.Error(1)
}

type mockEventSource struct {
	mock.Mock
}

func (m *mockEventSource) ActiveOnDate(ctx context.Context, turfID uuid.UUID, date string) ([]events.Event, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]events.Event), args.Error(1)
}

func (m *mockEventSource) Occupies(ctx context.Context, turfID uuid.UUID, date string, startMin, endMin int) (bool, error) {
	args := m.Called(ctx, turfID, date, startMin, endMin)
	return args.Bool(0), args.Error(1)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) PriceFor(ctx context.Context, turf *turfs.Turf, date string, slotStartMin int) (float64, error) {
	args := m.Called(ctx, turf, date, slotStartMin)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockResolver) Total(ctx context.Context, turf *turfs.Turf, date string, startMin, slots int) (float64, error) {
	args := m.Called(ctx, turf, date, startMin, slots)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockResolver) Sheet(ctx context.Context, turf *turfs.Turf, date string) (func(int) float64, error) {
	args := m.Called(ctx, turf, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func(int) float64), args.Error(1)
}

// testTurf is the example resource: open 06:00-22:00, 60-minute slots,
// base price 1000.
func testTurf() *turfs.Turf {
	return &turfs.Turf{
		ID:            uuid.New(),
		Name:          "Main Arena",
		OpeningTime:   "06:00",
		ClosingTime:   "22:00",
		SlotIncrement: 60,
		MinSlots:      1,
		MaxSlots:      3,
		BasePrice:     1000,
		Enabled:       true,
	}
}
