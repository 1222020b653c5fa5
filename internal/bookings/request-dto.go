package bookings

import "github.com/google/uuid"

// AdmissionRequest carries one booking attempt. Duration is a slot count,
// not minutes.
type AdmissionRequest struct {
	TurfID        uuid.UUID `json:"-"`
	Date          string    `json:"date" binding:"required,bookdate"`
	StartTime     string    `json:"startTime" binding:"required,clocktime"`
	Duration      int       `json:"duration" binding:"required,min=1"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,oneof=UPI CARD CASH"`
	CustomerName  string    `json:"customerName" binding:"required,min=2,max=255"`
	CustomerPhone string    `json:"customerPhone" binding:"required,min=7,max=20"`
	CustomerEmail string    `json:"customerEmail" binding:"required,email"`
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required,bookdate"`
}

// PaymentSignalRequest is the external payment webhook body. Status OK
// confirms the hold; FAILED rejects it.
type PaymentSignalRequest struct {
	BookingID  uuid.UUID `json:"bookingId" binding:"required"`
	Status     string    `json:"status" binding:"required,oneof=OK FAILED"`
	PaymentRef string    `json:"paymentRef" binding:"omitempty,max=255"`
}

type BookingListQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
