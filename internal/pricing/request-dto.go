package pricing

import "github.com/google/uuid"

type CreateRuleRequest struct {
	TurfID    uuid.UUID `json:"-"`
	Kind      string    `json:"kind" binding:"required,oneof=RECURRING_WEEKDAY SPECIFIC_DATE"`
	Weekdays  []string  `json:"weekdays" binding:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Date      string    `json:"date" binding:"omitempty,bookdate"`
	StartTime string    `json:"startTime" binding:"required,clocktime"`
	EndTime   string    `json:"endTime" binding:"required,clocktime"`
	Price     float64   `json:"price" binding:"required,gt=0"`
}

type UpdateRuleRequest struct {
	Weekdays  []string `json:"weekdays" binding:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Date      *string  `json:"date" binding:"omitempty,bookdate"`
	StartTime *string  `json:"startTime" binding:"omitempty,clocktime"`
	EndTime   *string  `json:"endTime" binding:"omitempty,clocktime"`
	Price     *float64 `json:"price" binding:"omitempty,gt=0"`
}
