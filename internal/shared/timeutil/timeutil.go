// Package timeutil converts between "HH:MM" clock strings and minute
// offsets from midnight. All times are wall-clock in the arena's single
// operating timezone; malformed input is a caller bug and panics.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ToMinutes converts a "HH:MM" clock string to minutes from midnight.
func ToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		panic(fmt.Sprintf("timeutil: malformed clock time %q", clock))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		panic(fmt.Sprintf("timeutil: malformed clock time %q", clock))
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		panic(fmt.Sprintf("timeutil: malformed clock time %q", clock))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		panic(fmt.Sprintf("timeutil: clock time out of range %q", clock))
	}
	return h*60 + m
}

// ToClockTime converts minutes from midnight back to "HH:MM".
func ToClockTime(minutes int) string {
	if minutes < 0 || minutes >= 24*60 {
		panic(fmt.Sprintf("timeutil: minute offset out of range %d", minutes))
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes shifts a "HH:MM" clock string by n minutes.
func AddMinutes(clock string, n int) string {
	return ToClockTime(ToMinutes(clock) + n)
}

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Minute offsets from midnight on both sides.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}
