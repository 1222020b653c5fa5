package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 0, ToMinutes("00:00"))
	assert.Equal(t, 360, ToMinutes("06:00"))
	assert.Equal(t, 1320, ToMinutes("22:00"))
	assert.Equal(t, 1439, ToMinutes("23:59"))
}

func TestToMinutesPanicsOnMalformedInput(t *testing.T) {
	assert.Panics(t, func() { ToMinutes("six am") })
	assert.Panics(t, func() { ToMinutes("25:00") })
	assert.Panics(t, func() { ToMinutes("12:75") })
	assert.Panics(t, func() { ToMinutes("") })
}

func TestToClockTime(t *testing.T) {
	assert.Equal(t, "00:00", ToClockTime(0))
	assert.Equal(t, "06:30", ToClockTime(390))
	assert.Equal(t, "23:59", ToClockTime(1439))
	assert.Panics(t, func() { ToClockTime(1440) })
	assert.Panics(t, func() { ToClockTime(-1) })
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, "07:00", AddMinutes("06:00", 60))
	assert.Equal(t, "18:30", AddMinutes("17:45", 45))
}

func TestOverlaps(t *testing.T) {
	// adjacent half-open intervals do not overlap
	assert.False(t, Overlaps(360, 420, 420, 480))
	assert.False(t, Overlaps(420, 480, 360, 420))

	assert.True(t, Overlaps(360, 480, 420, 540))
	assert.True(t, Overlaps(420, 540, 360, 480))

	// containment
	assert.True(t, Overlaps(360, 540, 420, 480))
	assert.True(t, Overlaps(420, 480, 360, 540))

	// identical
	assert.True(t, Overlaps(360, 420, 360, 420))
}
