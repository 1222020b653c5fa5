package blocks

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/shared/timeutil"
)

// TimeRange is a half-open [Start, End) blocked window within a day.
type TimeRange struct {
	Start string `json:"start" binding:"required,clocktime"` // "HH:MM"
	End   string `json:"end" binding:"required,clocktime"`
}

// BlockedEntry is an operator-defined unavailability record. At most one
// entry exists per (turf, start date); later writes merge into it.
//
// Shape rules:
//   - EndDate set           → the entry covers every day in [StartDate, EndDate]
//   - BlockedTimes set      → legacy discrete instants, each blocking one increment
//   - BlockedRanges set     → canonical blocked windows
//   - none of the above     → the whole day is blocked
type BlockedEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TurfID    uuid.UUID `json:"turf_id" gorm:"type:uuid;index;not null"`
	StartDate string    `json:"start_date" gorm:"size:10;not null"` // "YYYY-MM-DD"
	EndDate   *string   `json:"end_date,omitempty" gorm:"size:10"`

	BlockedTimes  []string    `json:"blocked_times,omitempty" gorm:"serializer:json"`
	BlockedRanges []TimeRange `json:"blocked_ranges,omitempty" gorm:"serializer:json"`

	Reason string `json:"reason,omitempty" gorm:"size:500"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (BlockedEntry) TableName() string {
	return "blocked_entries"
}

// IsWholeDay reports whether this entry blocks its day(s) entirely.
func (e *BlockedEntry) IsWholeDay() bool {
	return len(e.BlockedTimes) == 0 && len(e.BlockedRanges) == 0
}

// Covers reports whether the entry applies to the given "YYYY-MM-DD" date.
// Dates in ISO form compare correctly as strings.
func (e *BlockedEntry) Covers(date string) bool {
	if e.EndDate == nil {
		return e.StartDate == date
	}
	return e.StartDate <= date && date <= *e.EndDate
}

// NormalizedRanges funnels both representations into canonical half-open
// minute intervals: each legacy discrete time becomes [t, t+increment).
func (e *BlockedEntry) NormalizedRanges(increment int) [][2]int {
	ranges := make([][2]int, 0, len(e.BlockedTimes)+len(e.BlockedRanges))
	for _, t := range e.BlockedTimes {
		start := timeutil.ToMinutes(t)
		ranges = append(ranges, [2]int{start, start + increment})
	}
	for _, r := range e.BlockedRanges {
		ranges = append(ranges, [2]int{timeutil.ToMinutes(r.Start), timeutil.ToMinutes(r.End)})
	}
	return ranges
}

// BlocksInterval reports whether the candidate [start, end) minute interval
// is unavailable under this entry.
func (e *BlockedEntry) BlocksInterval(start, end, increment int) bool {
	if e.IsWholeDay() {
		return true
	}
	for _, r := range e.NormalizedRanges(increment) {
		if timeutil.Overlaps(start, end, r[0], r[1]) {
			return true
		}
	}
	return false
}
