package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/blocks"
	"turfbook/internal/events"
	"turfbook/internal/pricing"
	"turfbook/internal/shared/timeutil"
	"turfbook/internal/turfs"
)

// Slot is one increment-sized candidate within the operating window.
// Booked and blocked candidates are flagged, never removed, so clients
// can render disabled slots.
type Slot struct {
	Start     string  `json:"start"` // "HH:MM"
	IsBooked  bool    `json:"isBooked"`
	IsBlocked bool    `json:"isBlocked"`
	Price     float64 `json:"price"`
}

// TurfProvider narrows the turfs service to what the booking side needs.
type TurfProvider interface {
	GetByID(ctx context.Context, id uuid.UUID) (*turfs.Turf, error)
}

// BlockSource supplies the blocked entries covering a turf day.
type BlockSource interface {
	CoveringEntries(ctx context.Context, turfID uuid.UUID, date string) ([]blocks.BlockedEntry, error)
	IsBlocked(ctx context.Context, turfID uuid.UUID, date string, startMin, endMin, increment int) (bool, error)
}

// EventSource supplies the scheduled events covering a turf day.
type EventSource interface {
	ActiveOnDate(ctx context.Context, turfID uuid.UUID, date string) ([]events.Event, error)
	Occupies(ctx context.Context, turfID uuid.UUID, date string, startMin, endMin int) (bool, error)
}

// SlotGenerator walks a turf's operating window and flags each candidate
// against current bookings, blocked entries, and scheduled events. It is
// a pure reader: results may be transiently stale, which is acceptable
// because the admission path re-validates under its lock.
type SlotGenerator struct {
	turfProvider TurfProvider
	repo         Repository
	blockSource  BlockSource
	eventSource  EventSource
	resolver     pricing.Resolver
	reapWindow   time.Duration
}

// NewSlotGenerator creates a new slot generator instance
func NewSlotGenerator(turfProvider TurfProvider, repo Repository, blockSource BlockSource, eventSource EventSource, resolver pricing.Resolver, reapWindow time.Duration) *SlotGenerator {
	return &SlotGenerator{
		turfProvider: turfProvider,
		repo:         repo,
		blockSource:  blockSource,
		eventSource:  eventSource,
		resolver:     resolver,
		reapWindow:   reapWindow,
	}
}

// AvailableSlots computes the slot list for a turf day. now suppresses
// past slots when date is today; slots at or before now are never offered,
// including the currently running one.
func (g *SlotGenerator) AvailableSlots(ctx context.Context, turfID uuid.UUID, date string, now time.Time) ([]Slot, error) {
	// Housekeeping sweep so abandoned holds do not show as booked.
	if _, err := g.repo.ReapStaleHolds(ctx, turfID, now.Add(-g.reapWindow)); err != nil {
		return nil, fmt.Errorf("failed to reap stale holds: %w", err)
	}

	turf, err := g.turfProvider.GetByID(ctx, turfID)
	if err != nil {
		return nil, err
	}

	dayBookings, err := g.repo.GetForDate(ctx, turfID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	blockedEntries, err := g.blockSource.CoveringEntries(ctx, turfID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked entries: %w", err)
	}
	activeEvents, err := g.eventSource.ActiveOnDate(ctx, turfID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	var priceAt func(int) float64
	if g.resolver != nil {
		priceAt, err = g.resolver.Sheet(ctx, turf, date)
		if err != nil {
			return nil, err
		}
	}

	isToday := date == now.Format("2006-01-02")
	nowMin := now.Hour()*60 + now.Minute()

	opening := turf.OpeningMinutes()
	closing := turf.ClosingMinutes()
	increment := turf.SlotIncrement

	slots := make([]Slot, 0, turf.SlotCount())
	for start := opening; start+increment <= closing; start += increment {
		if isToday && start <= nowMin {
			continue
		}
		end := start + increment

		slot := Slot{Start: timeutil.ToClockTime(start)}

		for i := range dayBookings {
			b := &dayBookings[i]
			if b.OccupiesAt(now) && b.Overlaps(start, end) {
				slot.IsBooked = true
				break
			}
		}

		for i := range blockedEntries {
			if blockedEntries[i].BlocksInterval(start, end, increment) {
				slot.IsBlocked = true
				break
			}
		}
		if !slot.IsBlocked {
			for i := range activeEvents {
				if activeEvents[i].OccupiesInterval(start, end) {
					slot.IsBlocked = true
					break
				}
			}
		}

		if priceAt != nil {
			slot.Price = priceAt(start)
		}

		slots = append(slots, slot)
	}
	return slots, nil
}
