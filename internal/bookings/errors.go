package bookings

import (
	"errors"
	"fmt"
)

// RejectionReason classifies why an admission attempt was turned away, so
// a caller can explain "slot just became unavailable" versus "exceeds
// operating hours".
type RejectionReason string

const (
	// ReasonValidation covers malformed input caught before the
	// transaction opens: unknown turf, disabled turf, misaligned start,
	// duration outside the turf's min/max slots.
	ReasonValidation RejectionReason = "VALIDATION"

	// ReasonCapacity means the interval is blocked by an operator entry
	// or occupied by a scheduled event.
	ReasonCapacity RejectionReason = "CAPACITY"

	// ReasonConflict means the interval overlaps a confirmed booking or
	// an unexpired hold.
	ReasonConflict RejectionReason = "CONFLICT"

	// ReasonBoundary means the interval falls outside the operating
	// window.
	ReasonBoundary RejectionReason = "BOUNDARY"
)

// RejectionError is the structured "no" of the admission protocol. It is
// a domain outcome, not a system failure; the transaction that produced
// it rolled back with no partial writes.
type RejectionError struct {
	Reason  RejectionReason
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("booking rejected (%s): %s", e.Reason, e.Message)
}

func reject(reason RejectionReason, format string, args ...interface{}) *RejectionError {
	return &RejectionError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps a RejectionError if err carries one.
func AsRejection(err error) (*RejectionError, bool) {
	var re *RejectionError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotBookingOwner      = errors.New("booking does not belong to user")
	ErrHoldExpired          = errors.New("hold has expired")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrBookingNotCancelable = errors.New("booking cannot be cancelled in its current state")
)
