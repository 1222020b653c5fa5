package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turfbook/internal/users"
)

// Dates far in the future so the past-slot guard never interferes.
const testDate = "2030-06-01"

type serviceFixture struct {
	repo     *mockRepository
	turfs    *mockTurfProvider
	blocks   *mockBlockSource
	events   *mockEventSource
	resolver *mockResolver
	svc      Service
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		repo:     new(mockRepository),
		turfs:    new(mockTurfProvider),
		blocks:   new(mockBlockSource),
		events:   new(mockEventSource),
		resolver: new(mockResolver),
	}
	generator := NewSlotGenerator(f.turfs, f.repo, f.blocks, f.events, nil, 10*time.Minute)
	f.svc = NewService(f.repo, generator, f.turfs, f.blocks, f.events, f.resolver, nil, 5*time.Minute, 10*time.Minute)
	return f
}

func admissionReq(turfID uuid.UUID, start string, duration int) *AdmissionRequest {
	return &AdmissionRequest{
		TurfID:        turfID,
		Date:          testDate,
		StartTime:     start,
		Duration:      duration,
		PaymentMethod: "UPI",
		CustomerName:  "Asha Rao",
		CustomerPhone: "9876543210",
		CustomerEmail: "asha@example.com",
	}
}

func TestRequestBookingCreatesHold(t *testing.T) {
	f := newServiceFixture()
	turf := testTurf()
	customer := &users.User{ID: uuid.New()}

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)
	f.repo.On("ReapStaleHolds", mock.Anything, turf.ID, mock.Anything).Return(int64(0), nil)
	f.resolver.On("Total", mock.Anything, turf, testDate, 10*60, 2).Return(2000.0, nil)
	f.repo.On("UpsertCustomer", mock.Anything, "Asha Rao", "9876543210", "asha@example.com").Return(customer, nil)
	f.blocks.On("IsBlocked", mock.Anything, turf.ID, testDate, 10*60, 12*60, 60).Return(false, nil)
	f.events.On("Occupies", mock.Anything, turf.ID, testDate, 10*60, 12*60).Return(false, nil)
	f.repo.On("AdmitHold", mock.Anything, mock.AnythingOfType("*bookings.Booking")).Return(nil)

	booking, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "10:00", 2))
	require.NoError(t, err)

	assert.Equal(t, StatusHeld, booking.Status)
	assert.Equal(t, "10:00", booking.StartTime)
	assert.Equal(t, "12:00", booking.EndTime, "end time is derived and persisted")
	assert.Equal(t, 2000.0, booking.TotalPrice)
	assert.Equal(t, customer.ID, booking.UserID, "guest bookings land on the upserted customer")
	require.NotNil(t, booking.HoldExpiresAt)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), *booking.HoldExpiresAt, 5*time.Second)
}

func TestRequestBookingRejectedByBlockedRange(t *testing.T) {
	// The example day: 18:00-20:00 blocked. Booking 17:00 for 2 slots
	// (17:00-19:00) must be rejected even though only half the interval
	// is blocked.
	f := newServiceFixture()
	turf := testTurf()

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)
	f.repo.On("ReapStaleHolds", mock.Anything, turf.ID, mock.Anything).Return(int64(0), nil)
	f.resolver.On("Total", mock.Anything, turf, testDate, 17*60, 2).Return(2000.0, nil)
	f.repo.On("UpsertCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&users.User{ID: uuid.New()}, nil)
	f.blocks.On("IsBlocked", mock.Anything, turf.ID, testDate, 17*60, 19*60, 60).Return(true, nil)

	_, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "17:00", 2))

	re, ok := AsRejection(err)
	require.True(t, ok, "expected a structured rejection, got %v", err)
	assert.Equal(t, ReasonCapacity, re.Reason)
	f.repo.AssertNotCalled(t, "AdmitHold")
}

func TestRequestBookingRejectedPastClosing(t *testing.T) {
	f := newServiceFixture()
	turf := testTurf()

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)

	// 21:00 + 2 slots ends 23:00, past the 22:00 close.
	_, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "21:00", 2))

	re, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonBoundary, re.Reason)
	f.repo.AssertNotCalled(t, "ReapStaleHolds")
}

func TestRequestBookingRejectedBeforeOpening(t *testing.T) {
	f := newServiceFixture()
	turf := testTurf()

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)

	_, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "05:00", 1))

	re, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonBoundary, re.Reason)
}

func TestRequestBookingRejectedMisalignedStart(t *testing.T) {
	f := newServiceFixture()
	turf := testTurf()

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)

	_, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "10:30", 1))

	re, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonValidation, re.Reason)
}

func TestRequestBookingRejectedDurationOutOfRange(t *testing.T) {
	f := newServiceFixture()
	turf := testTurf()

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)

	_, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "10:00", 4))

	re, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonValidation, re.Reason)
}

func TestRequestBookingRejectedDisabledTurf(t *testing.T) {
	f := newServiceFixture()
	turf := testTurf()
	turf.Enabled = false
	turf.DisabledReason = "resurfacing"

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)

	_, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "10:00", 1))

	re, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonValidation, re.Reason)
}

func TestRequestBookingRejectedByEvent(t *testing.T) {
	f := newServiceFixture()
	turf := testTurf()

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)
	f.repo.On("ReapStaleHolds", mock.Anything, turf.ID, mock.Anything).Return(int64(0), nil)
	f.resolver.On("Total", mock.Anything, turf, testDate, 9*60, 1).Return(1000.0, nil)
	f.repo.On("UpsertCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&users.User{ID: uuid.New()}, nil)
	f.blocks.On("IsBlocked", mock.Anything, turf.ID, testDate, 9*60, 10*60, 60).Return(false, nil)
	f.events.On("Occupies", mock.Anything, turf.ID, testDate, 9*60, 10*60).Return(true, nil)

	_, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "09:00", 1))

	re, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonCapacity, re.Reason)
}

func TestRequestBookingConflictSurfacesReason(t *testing.T) {
	// A concurrent booking wins the race inside the admission
	// transaction: the overlap count comes back non-zero and the
	// rejection must carry the CONFLICT reason to the caller.
	f := newServiceFixture()
	turf := testTurf()

	f.turfs.On("GetByID", mock.Anything, turf.ID).Return(turf, nil)
	f.repo.On("ReapStaleHolds", mock.Anything, turf.ID, mock.Anything).Return(int64(0), nil)
	f.resolver.On("Total", mock.Anything, turf, testDate, 10*60, 1).Return(1000.0, nil)
	f.repo.On("UpsertCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&users.User{ID: uuid.New()}, nil)
	f.blocks.On("IsBlocked", mock.Anything, turf.ID, testDate, 10*60, 11*60, 60).Return(false, nil)
	f.events.On("Occupies", mock.Anything, turf.ID, testDate, 10*60, 11*60).Return(false, nil)
	f.repo.On("AdmitHold", mock.Anything, mock.AnythingOfType("*bookings.Booking")).
		Return(reject(ReasonConflict, "interval 10:00-11:00 on %s overlaps an existing booking", testDate))

	booking, err := f.svc.RequestBooking(context.Background(), uuid.Nil, admissionReq(turf.ID, "10:00", 1))

	assert.Nil(t, booking)
	re, ok := AsRejection(err)
	require.True(t, ok, "expected a structured rejection, got %v", err)
	assert.Equal(t, ReasonConflict, re.Reason)
}

func TestConfirmBooking(t *testing.T) {
	f := newServiceFixture()
	bookingID := uuid.New()
	expiry := time.Now().Add(3 * time.Minute)
	held := &Booking{ID: bookingID, Status: StatusHeld, HoldExpiresAt: &expiry}
	confirmed := &Booking{ID: bookingID, Status: StatusConfirmed}

	f.repo.On("GetByID", mock.Anything, bookingID).Return(held, nil).Once()
	f.repo.On("Transition", mock.Anything, bookingID, StatusConfirmed, mock.Anything).Return(nil)
	f.repo.On("GetByID", mock.Anything, bookingID).Return(confirmed, nil)

	booking, err := f.svc.ConfirmBooking(context.Background(), bookingID, "pay_123")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, booking.Status)
}

func TestConfirmBookingExpiredHold(t *testing.T) {
	f := newServiceFixture()
	bookingID := uuid.New()
	expiry := time.Now().Add(-1 * time.Minute)
	held := &Booking{ID: bookingID, Status: StatusHeld, HoldExpiresAt: &expiry}

	f.repo.On("GetByID", mock.Anything, bookingID).Return(held, nil)
	f.repo.On("Transition", mock.Anything, bookingID, StatusExpired, mock.Anything).Return(nil)

	_, err := f.svc.ConfirmBooking(context.Background(), bookingID, "pay_123")
	assert.ErrorIs(t, err, ErrHoldExpired)
	f.repo.AssertCalled(t, "Transition", mock.Anything, bookingID, StatusExpired, mock.Anything)
}

func TestConfirmBookingWrongState(t *testing.T) {
	f := newServiceFixture()
	bookingID := uuid.New()

	f.repo.On("GetByID", mock.Anything, bookingID).Return(&Booking{ID: bookingID, Status: StatusCancelled}, nil)

	_, err := f.svc.ConfirmBooking(context.Background(), bookingID, "pay_123")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelBookingOwnership(t *testing.T) {
	f := newServiceFixture()
	bookingID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	f.repo.On("GetByID", mock.Anything, bookingID).Return(&Booking{ID: bookingID, UserID: owner, Status: StatusConfirmed}, nil)

	err := f.svc.CancelBooking(context.Background(), bookingID, stranger, false)
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	f.repo.On("Transition", mock.Anything, bookingID, StatusCancelled, mock.Anything).Return(nil)
	err = f.svc.CancelBooking(context.Background(), bookingID, owner, false)
	assert.NoError(t, err)
}

func TestCancelBookingTerminalState(t *testing.T) {
	f := newServiceFixture()
	bookingID := uuid.New()
	owner := uuid.New()

	f.repo.On("GetByID", mock.Anything, bookingID).Return(&Booking{ID: bookingID, UserID: owner, Status: StatusExpired}, nil)

	err := f.svc.CancelBooking(context.Background(), bookingID, owner, false)
	assert.ErrorIs(t, err, ErrBookingNotCancelable)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusHeld.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusHeld.CanTransitionTo(StatusExpired))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusRefunded))
	assert.False(t, StatusExpired.CanTransitionTo(StatusConfirmed), "terminal bookings are never reused")
	assert.False(t, StatusRejected.CanTransitionTo(StatusHeld))
	assert.False(t, StatusRefunded.CanTransitionTo(StatusConfirmed))
}

func TestTransitionSources(t *testing.T) {
	assert.Equal(t, []Status{StatusHeld}, TransitionSources(StatusConfirmed))
	assert.Equal(t, []Status{StatusHeld}, TransitionSources(StatusExpired))
	assert.Equal(t, []Status{StatusHeld}, TransitionSources(StatusRejected))
	assert.Equal(t, []Status{StatusHeld, StatusConfirmed}, TransitionSources(StatusCancelled))
	assert.Equal(t, []Status{StatusConfirmed, StatusCancelled}, TransitionSources(StatusRefunded))
	assert.Empty(t, TransitionSources(StatusHeld), "nothing re-enters the held state")
}
