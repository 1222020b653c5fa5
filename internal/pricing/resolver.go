package pricing

import (
	"context"
	"fmt"
	"time"

	"turfbook/internal/shared/timeutil"
	"turfbook/internal/turfs"
)

// Resolver answers "what does this slot cost". Resolution order, most
// specific first:
//
//  1. specific-date peak rule containing the slot start
//  2. recurring weekday peak rule containing the slot start
//  3. weekend evening band, then weekend morning band (weekend dates)
//  4. weekday evening band, then weekday morning band (weekday dates)
//  5. turf base price
//
// Ad-hoc rules always override standing bands, which override the flat
// base rate.
type Resolver interface {
	// PriceFor resolves the price of one slot starting at slotStartMin
	// minutes from midnight on the given date.
	PriceFor(ctx context.Context, turf *turfs.Turf, date string, slotStartMin int) (float64, error)

	// Total sums the resolved price of each constituent slot. A booking
	// may straddle a peak boundary, so this is not slots * PriceFor(start).
	Total(ctx context.Context, turf *turfs.Turf, date string, startMin, slots int) (float64, error)

	// Sheet loads the day's rules once and returns a function resolving
	// any slot start on that date. For callers pricing a whole day.
	Sheet(ctx context.Context, turf *turfs.Turf, date string) (func(slotStartMin int) float64, error)
}

type resolver struct {
	repo Repository
}

// NewResolver creates a new pricing resolver instance
func NewResolver(repo Repository) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) PriceFor(ctx context.Context, turf *turfs.Turf, date string, slotStartMin int) (float64, error) {
	rules, err := r.repo.GetForDate(ctx, turf.ID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to load peak rules: %w", err)
	}
	weekday, err := weekdayOf(date)
	if err != nil {
		return 0, err
	}
	return resolve(turf, date, weekday, slotStartMin, rules), nil
}

func (r *resolver) Total(ctx context.Context, turf *turfs.Turf, date string, startMin, slots int) (float64, error) {
	rules, err := r.repo.GetForDate(ctx, turf.ID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to load peak rules: %w", err)
	}
	weekday, err := weekdayOf(date)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 0; i < slots; i++ {
		total += resolve(turf, date, weekday, startMin+i*turf.SlotIncrement, rules)
	}
	return total, nil
}

func (r *resolver) Sheet(ctx context.Context, turf *turfs.Turf, date string) (func(slotStartMin int) float64, error) {
	rules, err := r.repo.GetForDate(ctx, turf.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load peak rules: %w", err)
	}
	weekday, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}
	return func(slotStartMin int) float64 {
		return resolve(turf, date, weekday, slotStartMin, rules)
	}, nil
}

func weekdayOf(date string) (time.Weekday, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.Weekday(), nil
}

func isWeekend(weekday time.Weekday) bool {
	return weekday == time.Saturday || weekday == time.Sunday
}

func resolve(turf *turfs.Turf, date string, weekday time.Weekday, slotStartMin int, rules []PeakRule) float64 {
	for i := range rules {
		rule := &rules[i]
		if rule.Kind == KindSpecificDate && rule.Date == date && rule.ContainsSlot(slotStartMin) {
			return rule.Price
		}
	}
	for i := range rules {
		rule := &rules[i]
		if rule.Kind == KindRecurring && rule.MatchesWeekday(weekday) && rule.ContainsSlot(slotStartMin) {
			return rule.Price
		}
	}

	if isWeekend(weekday) {
		if turf.WeekendPricingEnabled {
			if price, ok := bandPrice(turf.WeekendMorning, turf.WeekendEvening, slotStartMin); ok {
				return price
			}
		}
		return turf.BasePrice
	}
	if turf.WeekdayPricingEnabled {
		if price, ok := bandPrice(turf.WeekdayMorning, turf.WeekdayEvening, slotStartMin); ok {
			return price
		}
	}
	return turf.BasePrice
}

// bandPrice checks the evening band first so it wins for late slots, then
// the morning band. A slot before both band starts falls through to base.
func bandPrice(morning, evening turfs.PriceBand, slotStartMin int) (float64, bool) {
	if evening.Start != "" && slotStartMin >= timeutil.ToMinutes(evening.Start) {
		return evening.Price, true
	}
	if morning.Start != "" && slotStartMin >= timeutil.ToMinutes(morning.Start) {
		return morning.Price, true
	}
	return 0, false
}
