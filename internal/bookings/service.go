package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/pricing"
	"turfbook/internal/shared/timeutil"
	"turfbook/pkg/logger"
)

// Notifier publishes booking lifecycle events. Implementations must not
// block the booking path; failures are logged and swallowed.
type Notifier interface {
	BookingHeld(ctx context.Context, booking *Booking)
	BookingConfirmed(ctx context.Context, booking *Booking)
	BookingCancelled(ctx context.Context, booking *Booking)
	BookingRejected(ctx context.Context, booking *Booking)
}

type Service interface {
	// Availability computes the slot list for a turf day, reaping stale
	// holds first.
	Availability(ctx context.Context, turfID uuid.UUID, date string, now time.Time) ([]Slot, error)

	// RequestBooking runs the admission protocol and returns the created
	// hold, or a *RejectionError explaining why the interval was refused.
	// userID is uuid.Nil for guest admission.
	RequestBooking(ctx context.Context, userID uuid.UUID, req *AdmissionRequest) (*Booking, error)

	// ConfirmBooking transitions a held booking to confirmed on an
	// external payment signal. A hold past its expiry cannot be
	// confirmed; it is marked expired instead.
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID, paymentRef string) (*Booking, error)

	// RejectBooking transitions a held booking to rejected on payment
	// failure.
	RejectBooking(ctx context.Context, bookingID uuid.UUID) error

	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool) error
	RefundBooking(ctx context.Context, bookingID uuid.UUID) error

	GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error)

	// ReapStaleHolds expires abandoned holds older than the reap window.
	ReapStaleHolds(ctx context.Context) (int64, error)
}

type service struct {
	repo        Repository
	log         *logger.Logger
	generator   *SlotGenerator
	turfs       TurfProvider
	blockSource BlockSource
	eventSource EventSource
	resolver    pricing.Resolver
	notifier    Notifier
	holdGrace   time.Duration
	reapWindow  time.Duration
}

// NewService creates a new booking service instance
func NewService(repo Repository, generator *SlotGenerator, turfProvider TurfProvider, blockSource BlockSource, eventSource EventSource, resolver pricing.Resolver, notifier Notifier, holdGrace, reapWindow time.Duration) Service {
	return &service{
		repo:        repo,
		log:         logger.GetDefault(),
		generator:   generator,
		turfs:       turfProvider,
		blockSource: blockSource,
		eventSource: eventSource,
		resolver:    resolver,
		notifier:    notifier,
		holdGrace:   holdGrace,
		reapWindow:  reapWindow,
	}
}

func (s *service) Availability(ctx context.Context, turfID uuid.UUID, date string, now time.Time) ([]Slot, error) {
	return s.generator.AvailableSlots(ctx, turfID, date, now)
}

func (s *service) RequestBooking(ctx context.Context, userID uuid.UUID, req *AdmissionRequest) (*Booking, error) {
	turf, err := s.turfs.GetByID(ctx, req.TurfID)
	if err != nil {
		return nil, reject(ReasonValidation, "unknown turf %s", req.TurfID)
	}
	if !turf.Enabled {
		return nil, reject(ReasonValidation, "turf is disabled: %s", turf.DisabledReason)
	}
	if req.Duration < turf.MinSlots || req.Duration > turf.MaxSlots {
		return nil, reject(ReasonValidation, "duration must be between %d and %d slots", turf.MinSlots, turf.MaxSlots)
	}

	startMin := timeutil.ToMinutes(req.StartTime)
	opening := turf.OpeningMinutes()
	closing := turf.ClosingMinutes()
	if startMin < opening {
		return nil, reject(ReasonBoundary, "start %s precedes opening time %s", req.StartTime, turf.OpeningTime)
	}
	if (startMin-opening)%turf.SlotIncrement != 0 {
		return nil, reject(ReasonValidation, "start %s is not aligned to the %d-minute slot grid", req.StartTime, turf.SlotIncrement)
	}
	endMin := startMin + req.Duration*turf.SlotIncrement
	if endMin > closing {
		return nil, reject(ReasonBoundary, "interval ends at %s, past closing time %s", timeutil.ToClockTime(endMin), turf.ClosingTime)
	}

	now := time.Now()
	if req.Date == now.Format("2006-01-02") && startMin <= now.Hour()*60+now.Minute() {
		return nil, reject(ReasonValidation, "slot %s is in the past", req.StartTime)
	}

	// Housekeeping before admission, same sweep the availability path runs.
	if _, err := s.repo.ReapStaleHolds(ctx, req.TurfID, now.Add(-s.reapWindow)); err != nil {
		return nil, fmt.Errorf("failed to reap stale holds: %w", err)
	}

	total, err := s.resolver.Total(ctx, turf, req.Date, startMin, req.Duration)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.UpsertCustomer(ctx, req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	bookingUserID := customer.ID
	if userID != uuid.Nil {
		bookingUserID = userID
	}

	holdExpiry := now.Add(s.holdGrace)
	booking := &Booking{
		TurfID:        req.TurfID,
		BookingDate:   req.Date,
		StartTime:     req.StartTime,
		EndTime:       timeutil.ToClockTime(endMin),
		Duration:      req.Duration,
		TotalPrice:    total,
		Status:        StatusHeld,
		HoldExpiresAt: &holdExpiry,
		UserID:        bookingUserID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		PaymentMethod: req.PaymentMethod,
	}

	err = s.repo.AdmitHold(ctx, booking, func(ctx context.Context) error {
		// Same checks the slot generator ran, re-run under the lock
		// because the generator's read may be stale by now.
		blocked, err := s.blockSource.IsBlocked(ctx, req.TurfID, req.Date, startMin, endMin, turf.SlotIncrement)
		if err != nil {
			return fmt.Errorf("failed to check blocked entries: %w", err)
		}
		if blocked {
			return reject(ReasonCapacity, "interval %s-%s on %s is blocked",
				req.StartTime, timeutil.ToClockTime(endMin), req.Date)
		}

		occupied, err := s.eventSource.Occupies(ctx, req.TurfID, req.Date, startMin, endMin)
		if err != nil {
			return fmt.Errorf("failed to check events: %w", err)
		}
		if occupied {
			return reject(ReasonCapacity, "interval %s-%s on %s is occupied by an event",
				req.StartTime, timeutil.ToClockTime(endMin), req.Date)
		}
		return nil
	})
	if err != nil {
		if re, ok := AsRejection(err); ok {
			s.log.LogAdmissionRejected(ctx, req.TurfID.String(), req.Date, req.StartTime, string(re.Reason))
		}
		return nil, err
	}

	s.log.LogHoldCreated(ctx, booking.ID.String(), booking.TurfID.String(), booking.BookingDate, booking.StartTime)
	s.notify(func(n Notifier) { n.BookingHeld(ctx, booking) })
	return booking, nil
}

func (s *service) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, paymentRef string) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != StatusHeld {
		return nil, fmt.Errorf("%w: cannot confirm a %s booking", ErrInvalidTransition, booking.Status)
	}
	if booking.HoldExpiresAt == nil || !booking.HoldExpiresAt.After(time.Now()) {
		// The hold lapsed before payment arrived; make the implicit
		// expiry explicit and refuse.
		if terr := s.repo.Transition(ctx, bookingID, StatusExpired, nil); terr != nil && !errors.Is(terr, ErrInvalidTransition) {
			return nil, terr
		}
		return nil, ErrHoldExpired
	}

	err = s.repo.Transition(ctx, bookingID, StatusConfirmed, map[string]interface{}{
		"payment_ref":     paymentRef,
		"hold_expires_at": nil,
	})
	if err != nil {
		return nil, err
	}

	booking, err = s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	s.log.LogBookingConfirmed(ctx, booking.ID.String())
	s.notify(func(n Notifier) { n.BookingConfirmed(ctx, booking) })
	return booking, nil
}

func (s *service) RejectBooking(ctx context.Context, bookingID uuid.UUID) error {
	if err := s.repo.Transition(ctx, bookingID, StatusRejected, nil); err != nil {
		return err
	}
	if booking, err := s.repo.GetByID(ctx, bookingID); err == nil {
		s.notify(func(n Notifier) { n.BookingRejected(ctx, booking) })
	}
	return nil
}

func (s *service) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool) error {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !isAdmin && booking.UserID != userID {
		return ErrNotBookingOwner
	}
	if !booking.Status.CanBeCancelled() {
		return ErrBookingNotCancelable
	}

	now := time.Now()
	err = s.repo.Transition(ctx, bookingID, StatusCancelled, map[string]interface{}{
		"cancelled_at": now,
	})
	if err != nil {
		return err
	}

	s.log.LogBookingCancelled(ctx, booking.ID.String())
	booking.Status = StatusCancelled
	booking.CancelledAt = &now
	s.notify(func(n Notifier) { n.BookingCancelled(ctx, booking) })
	return nil
}

func (s *service) RefundBooking(ctx context.Context, bookingID uuid.UUID) error {
	return s.repo.Transition(ctx, bookingID, StatusRefunded, nil)
}

func (s *service) GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.repo.GetByID(ctx, bookingID)
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetUserBookings(ctx, userID, limit, offset)
}

func (s *service) ReapStaleHolds(ctx context.Context) (int64, error) {
	reaped, err := s.repo.ReapStaleHolds(ctx, uuid.Nil, time.Now().Add(-s.reapWindow))
	if err != nil {
		return 0, err
	}
	if reaped > 0 {
		s.log.LogHoldsReaped(ctx, "", reaped)
	}
	return reaped, nil
}

func (s *service) notify(publish func(Notifier)) {
	if s.notifier != nil {
		publish(s.notifier)
	}
}
