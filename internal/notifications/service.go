package notifications

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/bookings"
)

// BookingNotifier adapts the Kafka producer to the booking service's
// notifier contract. Publishing is fire-and-forget: a broker outage must
// never fail or delay an admission.
type BookingNotifier struct {
	producer Producer
}

// NewBookingNotifier creates a new booking notifier instance
func NewBookingNotifier(producer Producer) *BookingNotifier {
	return &BookingNotifier{producer: producer}
}

func (n *BookingNotifier) BookingHeld(ctx context.Context, booking *bookings.Booking) {
	n.publish(booking, EventTypeBookingHeld)
}

func (n *BookingNotifier) BookingConfirmed(ctx context.Context, booking *bookings.Booking) {
	n.publish(booking, EventTypeBookingConfirmed)
}

func (n *BookingNotifier) BookingCancelled(ctx context.Context, booking *bookings.Booking) {
	n.publish(booking, EventTypeBookingCancelled)
}

func (n *BookingNotifier) BookingRejected(ctx context.Context, booking *bookings.Booking) {
	n.publish(booking, EventTypeBookingRejected)
}

func (n *BookingNotifier) publish(booking *bookings.Booking, eventType EventType) {
	event := &BookingEvent{
		ID:            uuid.New(),
		Type:          eventType,
		Timestamp:     time.Now(),
		BookingID:     booking.ID,
		TurfID:        booking.TurfID,
		BookingDate:   booking.BookingDate,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		TotalPrice:    booking.TotalPrice,
		Status:        booking.Status.String(),
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		CustomerEmail: booking.CustomerEmail,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := n.producer.Publish(ctx, event); err != nil {
			log.Printf("Failed to publish %s for booking %s: %v", eventType, booking.ID, err)
		}
	}()
}
