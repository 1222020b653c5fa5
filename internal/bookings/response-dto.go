package bookings

import (
	"time"
)

type BookingResponse struct {
	ID            string     `json:"id"`
	TurfID        string     `json:"turf_id"`
	BookingDate   string     `json:"booking_date"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Duration      int        `json:"duration"`
	TotalPrice    float64    `json:"total_price"`
	Status        string     `json:"status"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`
	CustomerName  string     `json:"customer_name"`
	PaymentMethod string     `json:"payment_method"`
	CreatedAt     time.Time  `json:"created_at"`
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type AvailabilityResponse struct {
	TurfID string `json:"turf_id"`
	Date   string `json:"date"`
	Slots  []Slot `json:"slots"`
}

// ToResponse converts a booking to its API shape.
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		TurfID:        b.TurfID.String(),
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Duration:      b.Duration,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status.String(),
		HoldExpiresAt: b.HoldExpiresAt,
		CustomerName:  b.CustomerName,
		PaymentMethod: b.PaymentMethod,
		CreatedAt:     b.CreatedAt,
	}
}
