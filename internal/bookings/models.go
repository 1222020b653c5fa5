package bookings

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/shared/timeutil"
)

// Booking is one reservation of a contiguous run of slots on a turf day.
// It is created as HELD by the admission path with a hold expiry; an
// external payment signal confirms it. A HELD row past its expiry is
// treated as non-existent by every overlap check without requiring a
// synchronous status transition.
type Booking struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TurfID uuid.UUID `json:"turf_id" gorm:"type:uuid;index;not null"`

	BookingDate string `json:"booking_date" gorm:"size:10;not null"`        // "YYYY-MM-DD"
	StartTime   string `json:"start_time" gorm:"size:5;not null"`           // "HH:MM"
	EndTime     string `json:"end_time" gorm:"size:5;not null"`             // derived, persisted
	Duration    int    `json:"duration" gorm:"not null;check:duration > 0"` // slot count

	TotalPrice float64 `json:"total_price" gorm:"not null;check:total_price >= 0"`
	Status     Status  `json:"status" gorm:"type:varchar(20);default:'HELD';index"`

	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"` // meaningful only while HELD

	// Customer identity. UserID is set for authenticated bookings; guest
	// and walk-in flows are upserted into users by contact identity.
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	CustomerName  string    `json:"customer_name" gorm:"size:255"`
	CustomerPhone string    `json:"customer_phone" gorm:"size:20"`
	CustomerEmail string    `json:"customer_email" gorm:"size:255"`

	PaymentMethod string `json:"payment_method" gorm:"size:50"`
	PaymentRef    string `json:"payment_ref,omitempty" gorm:"size:255"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// StartMinutes returns the start time as minutes from midnight.
func (b *Booking) StartMinutes() int {
	return timeutil.ToMinutes(b.StartTime)
}

// EndMinutes returns the end time as minutes from midnight.
func (b *Booking) EndMinutes() int {
	return timeutil.ToMinutes(b.EndTime)
}

// OccupiesAt reports whether this booking counts against availability at
// the given instant: confirmed, or held with an unexpired hold.
func (b *Booking) OccupiesAt(now time.Time) bool {
	switch b.Status {
	case StatusConfirmed:
		return true
	case StatusHeld:
		return b.HoldExpiresAt != nil && b.HoldExpiresAt.After(now)
	}
	return false
}

// Overlaps tests the booking's [start, end) against a candidate interval.
func (b *Booking) Overlaps(startMin, endMin int) bool {
	return timeutil.Overlaps(startMin, endMin, b.StartMinutes(), b.EndMinutes())
}
