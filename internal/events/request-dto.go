package events

import "github.com/google/uuid"

type CreateEventRequest struct {
	TurfID      uuid.UUID `json:"-"`
	Name        string    `json:"name" binding:"required,min=3,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	StartDate   string    `json:"startDate" binding:"required,bookdate"`
	EndDate     string    `json:"endDate" binding:"omitempty,bookdate"`
	StartTime   string    `json:"startTime" binding:"required,clocktime"`
	EndTime     string    `json:"endTime" binding:"required,clocktime"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	StartDate   *string `json:"startDate" binding:"omitempty,bookdate"`
	EndDate     *string `json:"endDate" binding:"omitempty,bookdate"`
	StartTime   *string `json:"startTime" binding:"omitempty,clocktime"`
	EndTime     *string `json:"endTime" binding:"omitempty,clocktime"`
	Status      *string `json:"status" binding:"omitempty,oneof=SCHEDULED CANCELLED COMPLETED"`
}
