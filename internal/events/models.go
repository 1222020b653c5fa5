package events

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/shared/timeutil"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Event is an operator-scheduled happening (tournament, coaching camp,
// maintenance crew) that occupies its clock window exclusively on every
// date in [StartDate, EndDate], regardless of booking or blocking state.
type Event struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TurfID uuid.UUID `json:"turf_id" gorm:"type:uuid;index;not null"`

	Name        string `json:"name" gorm:"not null;size:255"`
	Description string `json:"description" gorm:"type:text"`

	StartDate string `json:"start_date" gorm:"size:10;not null"` // "YYYY-MM-DD"
	EndDate   string `json:"end_date" gorm:"size:10;not null"`
	StartTime string `json:"start_time" gorm:"size:5;not null"` // "HH:MM"
	EndTime   string `json:"end_time" gorm:"size:5;not null"`

	Status Status `json:"status" gorm:"type:varchar(20);default:'SCHEDULED'"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

// OccupiesInterval reports whether the event's clock window overlaps the
// candidate [start, end) minute interval.
func (e *Event) OccupiesInterval(startMin, endMin int) bool {
	return timeutil.Overlaps(startMin, endMin, timeutil.ToMinutes(e.StartTime), timeutil.ToMinutes(e.EndTime))
}
