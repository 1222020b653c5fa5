package blocks

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func entry(mutate func(*BlockedEntry)) *BlockedEntry {
	e := &BlockedEntry{
		ID:        uuid.New(),
		TurfID:    uuid.New(),
		StartDate: "2026-09-01",
		CreatedAt: time.Now(),
	}
	if mutate != nil {
		mutate(e)
	}
	return e
}

func TestIsWholeDay(t *testing.T) {
	assert.True(t, entry(nil).IsWholeDay())
	assert.False(t, entry(func(e *BlockedEntry) {
		e.BlockedTimes = []string{"10:00"}
	}).IsWholeDay())
	assert.False(t, entry(func(e *BlockedEntry) {
		e.BlockedRanges = []TimeRange{{Start: "10:00", End: "12:00"}}
	}).IsWholeDay())
}

func TestCovers(t *testing.T) {
	single := entry(nil)
	assert.True(t, single.Covers("2026-09-01"))
	assert.False(t, single.Covers("2026-09-02"))

	end := "2026-09-05"
	ranged := entry(func(e *BlockedEntry) { e.EndDate = &end })
	assert.True(t, ranged.Covers("2026-09-01"))
	assert.True(t, ranged.Covers("2026-09-03"))
	assert.True(t, ranged.Covers("2026-09-05"))
	assert.False(t, ranged.Covers("2026-09-06"))
	assert.False(t, ranged.Covers("2026-08-31"))
}

func TestNormalizedRanges(t *testing.T) {
	e := entry(func(e *BlockedEntry) {
		e.BlockedTimes = []string{"18:00", "19:00"}
		e.BlockedRanges = []TimeRange{{Start: "06:00", End: "08:00"}}
	})

	got := e.NormalizedRanges(60)
	assert.ElementsMatch(t, [][2]int{{360, 480}, {1080, 1140}, {1140, 1200}}, got)
}

func TestBlocksInterval(t *testing.T) {
	// Example day: 18:00 and 19:00 blocked on a 60-minute grid.
	e := entry(func(e *BlockedEntry) {
		e.BlockedTimes = []string{"18:00", "19:00"}
	})

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"entirely before", 16 * 60, 17 * 60, false},
		{"ends at block start", 17 * 60, 18 * 60, false},
		{"spills into block", 17 * 60, 19 * 60, true},
		{"inside block", 18 * 60, 19 * 60, true},
		{"starts at block end", 20 * 60, 21 * 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.BlocksInterval(tt.start, tt.end, 60))
		})
	}

	// Whole-day entry blocks everything.
	whole := entry(nil)
	assert.True(t, whole.BlocksInterval(0, 30, 60))
	assert.True(t, whole.BlocksInterval(23*60, 24*60, 60))
}

func TestBlocksIntervalRanges(t *testing.T) {
	e := entry(func(e *BlockedEntry) {
		e.BlockedRanges = []TimeRange{{Start: "09:30", End: "11:00"}}
	})

	assert.False(t, e.BlocksInterval(8*60, 9*60+30, 30))
	assert.True(t, e.BlocksInterval(9*60, 10*60, 30))
	assert.True(t, e.BlocksInterval(10*60+30, 11*60, 30))
	assert.False(t, e.BlocksInterval(11*60, 12*60, 30))
}
