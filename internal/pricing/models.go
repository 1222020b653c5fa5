package pricing

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/shared/timeutil"
)

// RuleKind discriminates how a peak rule selects its days.
type RuleKind string

const (
	KindRecurring    RuleKind = "RECURRING_WEEKDAY"
	KindSpecificDate RuleKind = "SPECIFIC_DATE"
)

// PeakRule is an ad-hoc price override for a turf. Recurring rules carry a
// weekday set; specific-date rules pin one calendar date. A rule applies to
// a slot when its day matches and [StartTime, EndTime) contains the slot
// start. Rules are validated non-overlapping per (turf, kind) at write
// time, so the resolver can take the first match.
type PeakRule struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TurfID uuid.UUID `json:"turf_id" gorm:"type:uuid;index;not null"`

	Kind     RuleKind `json:"kind" gorm:"size:20;not null"`
	Weekdays []string `json:"weekdays,omitempty" gorm:"serializer:json"` // "Monday".."Sunday", recurring rules only
	Date     string   `json:"date,omitempty" gorm:"size:10"`             // "YYYY-MM-DD", specific-date rules only

	StartTime string  `json:"start_time" gorm:"size:5;not null"` // "HH:MM"
	EndTime   string  `json:"end_time" gorm:"size:5;not null"`
	Price     float64 `json:"price" gorm:"not null;check:price >= 0"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (PeakRule) TableName() string {
	return "peak_rules"
}

// ContainsSlot reports whether [StartTime, EndTime) contains the slot start.
func (r *PeakRule) ContainsSlot(slotStartMin int) bool {
	return timeutil.ToMinutes(r.StartTime) <= slotStartMin && slotStartMin < timeutil.ToMinutes(r.EndTime)
}

// MatchesWeekday reports whether a recurring rule covers the given weekday.
func (r *PeakRule) MatchesWeekday(weekday time.Weekday) bool {
	for _, d := range r.Weekdays {
		if d == weekday.String() {
			return true
		}
	}
	return false
}
