package turfs

import "time"

// TurfResponse is the public view of a turf.
type TurfResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	OpeningTime   string  `json:"opening_time"`
	ClosingTime   string  `json:"closing_time"`
	SlotIncrement int     `json:"slot_increment"`
	MinSlots      int     `json:"min_slots"`
	MaxSlots      int     `json:"max_slots"`
	BasePrice     float64 `json:"base_price"`

	WeekdayPricingEnabled bool      `json:"weekday_pricing_enabled"`
	WeekdayMorning        PriceBand `json:"weekday_morning,omitempty"`
	WeekdayEvening        PriceBand `json:"weekday_evening,omitempty"`
	WeekendPricingEnabled bool      `json:"weekend_pricing_enabled"`
	WeekendMorning        PriceBand `json:"weekend_morning,omitempty"`
	WeekendEvening        PriceBand `json:"weekend_evening,omitempty"`

	Enabled        bool      `json:"enabled"`
	DisabledReason string    `json:"disabled_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaginatedTurfs wraps a turf page with totals.
type PaginatedTurfs struct {
	Turfs      []TurfResponse `json:"turfs"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// ToResponse converts a Turf to its public view.
func (t *Turf) ToResponse() TurfResponse {
	return TurfResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		Description:   t.Description,
		Location:      t.Location,
		OpeningTime:   t.OpeningTime,
		ClosingTime:   t.ClosingTime,
		SlotIncrement: t.SlotIncrement,
		MinSlots:      t.MinSlots,
		MaxSlots:      t.MaxSlots,
		BasePrice:     t.BasePrice,

		WeekdayPricingEnabled: t.WeekdayPricingEnabled,
		WeekdayMorning:        t.WeekdayMorning,
		WeekdayEvening:        t.WeekdayEvening,
		WeekendPricingEnabled: t.WeekendPricingEnabled,
		WeekendMorning:        t.WeekendMorning,
		WeekendEvening:        t.WeekendEvening,

		Enabled:        t.Enabled,
		DisabledReason: t.DisabledReason,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
