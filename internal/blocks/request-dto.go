package blocks

import "github.com/google/uuid"

// BlockRequest carries one block mutation. Times, Ranges, an EndDate span,
// and WholeDay may be combined; at least one must be present.
type BlockRequest struct {
	TurfID   uuid.UUID   `json:"-"`
	Date     string      `json:"date" binding:"required,bookdate"`
	EndDate  *string     `json:"endDate,omitempty" binding:"omitempty,bookdate"`
	WholeDay bool        `json:"wholeDay"`
	Times    []string    `json:"times" binding:"omitempty,dive,clocktime"`
	Ranges   []TimeRange `json:"ranges" binding:"omitempty,dive"`
	Reason   string      `json:"reason" binding:"omitempty,max=255"`
}

type UnblockTimeRequest struct {
	Date string `json:"date" binding:"required,bookdate"`
	Time string `json:"time" binding:"required,clocktime"`
}

type ListQuery struct {
	From string `form:"from" binding:"omitempty,bookdate"`
}
