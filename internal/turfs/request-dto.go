package turfs

// CreateTurfRequest carries the admin payload for a new turf.
type CreateTurfRequest struct {
	Name          string  `json:"name" binding:"required,min=3,max=255"`
	Description   string  `json:"description" binding:"max=2000"`
	Location      string  `json:"location" binding:"max=255"`
	OpeningTime   string  `json:"opening_time" binding:"required,clocktime"`
	ClosingTime   string  `json:"closing_time" binding:"required,clocktime"`
	SlotIncrement int     `json:"slot_increment" binding:"omitempty,min=15,max=240"`
	MinSlots      int     `json:"min_slots" binding:"omitempty,min=1"`
	MaxSlots      int     `json:"max_slots" binding:"omitempty,min=1"`
	BasePrice     float64 `json:"base_price" binding:"required,min=0"`

	WeekdayPricingEnabled bool       `json:"weekday_pricing_enabled"`
	WeekdayMorning        *BandInput `json:"weekday_morning" binding:"omitempty"`
	WeekdayEvening        *BandInput `json:"weekday_evening" binding:"omitempty"`
	WeekendPricingEnabled bool       `json:"weekend_pricing_enabled"`
	WeekendMorning        *BandInput `json:"weekend_morning" binding:"omitempty"`
	WeekendEvening        *BandInput `json:"weekend_evening" binding:"omitempty"`
}

// BandInput is one price band in a create/update payload.
type BandInput struct {
	Start string  `json:"start" binding:"required,clocktime"`
	Price float64 `json:"price" binding:"required,min=0"`
}

// UpdateTurfRequest carries partial updates; nil fields are left untouched.
type UpdateTurfRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=3,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=2000"`
	Location      *string  `json:"location" binding:"omitempty,max=255"`
	OpeningTime   *string  `json:"opening_time" binding:"omitempty,clocktime"`
	ClosingTime   *string  `json:"closing_time" binding:"omitempty,clocktime"`
	SlotIncrement *int     `json:"slot_increment" binding:"omitempty,min=15,max=240"`
	MinSlots      *int     `json:"min_slots" binding:"omitempty,min=1"`
	MaxSlots      *int     `json:"max_slots" binding:"omitempty,min=1"`
	BasePrice     *float64 `json:"base_price" binding:"omitempty,min=0"`

	WeekdayPricingEnabled *bool      `json:"weekday_pricing_enabled"`
	WeekdayMorning        *BandInput `json:"weekday_morning" binding:"omitempty"`
	WeekdayEvening        *BandInput `json:"weekday_evening" binding:"omitempty"`
	WeekendPricingEnabled *bool      `json:"weekend_pricing_enabled"`
	WeekendMorning        *BandInput `json:"weekend_morning" binding:"omitempty"`
	WeekendEvening        *BandInput `json:"weekend_evening" binding:"omitempty"`
}

// SetStatusRequest enables or disables a turf for booking.
type SetStatusRequest struct {
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason" binding:"max=500"`
}

// TurfListQuery holds list filters and pagination.
type TurfListQuery struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search  string `form:"search"`
	Enabled *bool  `form:"enabled"`
}
