package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"turfbook/internal/users"
)

type Repository interface {
	// AdmitHold runs the locked admission transaction: it serializes on
	// the (turf, date) key, invokes revalidate while the lock is held,
	// re-checks booking overlap against the now-consistent snapshot, and
	// inserts the hold. Any error rolls everything back and releases the
	// lock.
	AdmitHold(ctx context.Context, booking *Booking, revalidate func(ctx context.Context) error) error

	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	// GetForDate returns every HELD or CONFIRMED booking on the turf day.
	// Callers decide whether a held row still counts via OccupiesAt.
	GetForDate(ctx context.Context, turfID uuid.UUID, date string) ([]Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error)

	// Transition moves a booking to the target status. The allowed source
	// states come from TransitionSources, and the update is guarded on
	// them so a concurrent transition cannot double-apply.
	Transition(ctx context.Context, id uuid.UUID, to Status, updates map[string]interface{}) error

	// UpsertCustomer resolves or creates the customer identity by email,
	// for walk-in and guest admission flows.
	UpsertCustomer(ctx context.Context, name, phone, email string) (*users.User, error)

	// ReapStaleHolds marks HELD rows created before the cutoff as EXPIRED.
	// A zero turfID sweeps every turf.
	ReapStaleHolds(ctx context.Context, turfID uuid.UUID, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookings repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AdmitHold(ctx context.Context, booking *Booking, revalidate func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// One advisory key per (turf, date). pg_advisory_xact_lock blocks
		// until free and releases on commit or rollback, so a request
		// aborted mid-transaction cannot leave a stuck lock.
		lockKey := fmt.Sprintf("%s:%s", booking.TurfID, booking.BookingDate)
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", lockKey).Error; err != nil {
			return fmt.Errorf("failed to acquire admission lock: %w", err)
		}

		// Block and event state may have changed since the caller's
		// availability read; re-check it under the lock.
		if err := revalidate(ctx); err != nil {
			return err
		}

		// Overlap re-validation against confirmed and unexpired-held
		// bookings. Expired holds are ignored here, not deleted; the
		// reaper handles them asynchronously.
		var conflicting int64
		err := tx.Model(&Booking{}).
			Where("turf_id = ? AND booking_date = ?", booking.TurfID, booking.BookingDate).
			Where("start_time < ? AND end_time > ?", booking.EndTime, booking.StartTime).
			Where("(status = ? OR (status = ? AND hold_expires_at > ?))",
				StatusConfirmed, StatusHeld, time.Now()).
			Count(&conflicting).Error
		if err != nil {
			return fmt.Errorf("failed to check booking conflicts: %w", err)
		}
		if conflicting > 0 {
			return reject(ReasonConflict, "interval %s-%s on %s overlaps an existing booking",
				booking.StartTime, booking.EndTime, booking.BookingDate)
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create hold: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetForDate(ctx context.Context, turfID uuid.UUID, date string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("turf_id = ? AND booking_date = ?", turfID, date).
		Where("status IN ?", []Status{StatusHeld, StatusConfirmed}).
		Order("start_time").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	baseQuery := r.db.WithContext(ctx).Model(&Booking{}).Where("user_id = ?", userID)
	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error
	return bookings, totalCount, err
}

func (r *repository) Transition(ctx context.Context, id uuid.UUID, to Status, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = to
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ? AND status IN ?", id, TransitionSources(to)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the booking is gone or another transition won the race.
		var count int64
		if err := r.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrBookingNotFound
		}
		return ErrInvalidTransition
	}
	return nil
}

func (r *repository) UpsertCustomer(ctx context.Context, name, phone, email string) (*users.User, error) {
	first, last := splitName(name)
	user := users.User{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
		Role:      users.RoleUser,
	}

	// Single atomic upsert: two concurrent guest admissions with the same
	// new email cannot race a SELECT-then-INSERT into a unique violation.
	// An existing identity keeps its name; only a newly supplied phone is
	// taken over.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"phone": gorm.Expr(`COALESCE(NULLIF(excluded.phone, ''), users.phone)`),
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return &user, nil
}

func splitName(full string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

func (r *repository) ReapStaleHolds(ctx context.Context, turfID uuid.UUID, cutoff time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("status = ? AND created_at < ?", StatusHeld, cutoff)
	if turfID != uuid.Nil {
		query = query.Where("turf_id = ?", turfID)
	}

	result := query.Updates(map[string]interface{}{
		"status":     StatusExpired,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}
