package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeBookingHeld      EventType = "BOOKING_HELD"
	EventTypeBookingConfirmed EventType = "BOOKING_CONFIRMED"
	EventTypeBookingCancelled EventType = "BOOKING_CANCELLED"
	EventTypeBookingRejected  EventType = "BOOKING_REJECTED"
)

// BookingEvent is the message published for every booking lifecycle
// transition. Downstream consumers (SMS gateway, dashboards, audit) read
// it off the booking-events topic.
type BookingEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	BookingID   uuid.UUID `json:"booking_id"`
	TurfID      uuid.UUID `json:"turf_id"`
	BookingDate string    `json:"booking_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	TotalPrice  float64   `json:"total_price"`
	Status      string    `json:"status"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

// ToJSON serializes the event for the wire.
func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON deserializes an event from the wire.
func FromJSON(data []byte) (*BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// PartitionKey routes all events for one turf day to the same partition,
// preserving per-day ordering for consumers.
func (e *BookingEvent) PartitionKey() string {
	return e.TurfID.String() + ":" + e.BookingDate
}
