package turfs

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/shared/timeutil"
)

// PriceBand is a standing price override that applies from Start onwards
// within its day class. Bands are checked evening-first by the pricing
// resolver, so the evening band wins for slots at or after its start.
type PriceBand struct {
	Start string  `json:"start" gorm:"size:5"` // "HH:MM"
	Price float64 `json:"price"`
}

// Turf is the bookable resource: a pitch with an operating window, a fixed
// slot increment, and optional day-class price bands.
type Turf struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"size:255"`

	OpeningTime   string `json:"opening_time" gorm:"not null;size:5"` // "HH:MM"
	ClosingTime   string `json:"closing_time" gorm:"not null;size:5"`
	SlotIncrement int    `json:"slot_increment" gorm:"not null;default:60;check:slot_increment > 0"` // minutes
	MinSlots      int    `json:"min_slots" gorm:"not null;default:1;check:min_slots > 0"`
	MaxSlots      int    `json:"max_slots" gorm:"not null;default:3;check:max_slots > 0"`

	BasePrice float64 `json:"base_price" gorm:"not null;check:base_price >= 0"` // per slot

	WeekdayPricingEnabled bool      `json:"weekday_pricing_enabled" gorm:"default:false"`
	WeekdayMorning        PriceBand `json:"weekday_morning" gorm:"embedded;embeddedPrefix:weekday_morning_"`
	WeekdayEvening        PriceBand `json:"weekday_evening" gorm:"embedded;embeddedPrefix:weekday_evening_"`

	WeekendPricingEnabled bool      `json:"weekend_pricing_enabled" gorm:"default:false"`
	WeekendMorning        PriceBand `json:"weekend_morning" gorm:"embedded;embeddedPrefix:weekend_morning_"`
	WeekendEvening        PriceBand `json:"weekend_evening" gorm:"embedded;embeddedPrefix:weekend_evening_"`

	Enabled        bool   `json:"enabled" gorm:"default:true"`
	DisabledReason string `json:"disabled_reason,omitempty" gorm:"size:500"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Turf) TableName() string {
	return "turfs"
}

// OpeningMinutes returns the opening time as minutes from midnight.
func (t *Turf) OpeningMinutes() int {
	return timeutil.ToMinutes(t.OpeningTime)
}

// ClosingMinutes returns the closing time as minutes from midnight.
func (t *Turf) ClosingMinutes() int {
	return timeutil.ToMinutes(t.ClosingTime)
}

// SlotCount returns the number of bookable increments in the operating window.
func (t *Turf) SlotCount() int {
	return (t.ClosingMinutes() - t.OpeningMinutes()) / t.SlotIncrement
}
