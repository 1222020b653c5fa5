package blocks

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"turfbook/internal/shared/timeutil"
)

var ErrNothingToBlock = errors.New("request contains no times, ranges, or day span")

// Service is the blocking model: the admission and availability paths ask
// it whether an interval is blocked, and operators mutate entries through
// it with merge semantics.
type Service interface {
	// IsBlocked reports whether the candidate [startMin, endMin) minute
	// interval on the given date is unavailable for the turf. increment is
	// the turf's slot increment, used to widen legacy discrete times.
	IsBlocked(ctx context.Context, turfID uuid.UUID, date string, startMin, endMin, increment int) (bool, error)

	// Block merges the request into the entry for (turf, start date),
	// creating it if absent. Blocking the same time twice yields one entry
	// with a deduplicated set.
	Block(ctx context.Context, adminID uuid.UUID, req *BlockRequest) (*BlockedEntry, error)

	// UnblockTime removes one discrete time or range start from the entry;
	// when the entry becomes empty it is deleted and the date reverts to
	// fully open.
	UnblockTime(ctx context.Context, turfID uuid.UUID, date string, clockTime string) error

	// CoveringEntries returns every entry that applies on the date. The
	// slot generator loads these once and tests each candidate locally.
	CoveringEntries(ctx context.Context, turfID uuid.UUID, date string) ([]BlockedEntry, error)

	DeleteEntry(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, turfID uuid.UUID, fromDate string) ([]BlockedEntry, error)
}

type service struct {
	repo Repository
}

// NewService creates a new blocking service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) IsBlocked(ctx context.Context, turfID uuid.UUID, date string, startMin, endMin, increment int) (bool, error) {
	entries, err := s.repo.GetCovering(ctx, turfID, date)
	if err != nil {
		return false, fmt.Errorf("failed to load blocked entries: %w", err)
	}

	for i := range entries {
		if entries[i].BlocksInterval(startMin, endMin, increment) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) Block(ctx context.Context, adminID uuid.UUID, req *BlockRequest) (*BlockedEntry, error) {
	if len(req.Times) == 0 && len(req.Ranges) == 0 && req.EndDate == nil && !req.WholeDay {
		return nil, ErrNothingToBlock
	}

	entry, err := s.repo.GetByStartDate(ctx, req.TurfID, req.Date)
	if err != nil {
		if !errors.Is(err, ErrEntryNotFound) {
			return nil, fmt.Errorf("failed to load blocked entry: %w", err)
		}
		entry = &BlockedEntry{
			TurfID:    req.TurfID,
			StartDate: req.Date,
			CreatedBy: adminID,
		}
		if err := s.merge(entry, req); err != nil {
			return nil, err
		}
		if err := s.repo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create blocked entry: %w", err)
		}
		return entry, nil
	}

	if err := s.merge(entry, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update blocked entry: %w", err)
	}
	return entry, nil
}

// merge folds the request into the entry, deduplicating times and ranges.
// A whole-day request clears finer-grained state: the day block subsumes it.
func (s *service) merge(entry *BlockedEntry, req *BlockRequest) error {
	if req.Reason != "" {
		entry.Reason = req.Reason
	}
	if req.EndDate != nil {
		if *req.EndDate < entry.StartDate {
			return fmt.Errorf("end date %s precedes start date %s", *req.EndDate, entry.StartDate)
		}
		entry.EndDate = req.EndDate
	}
	if req.WholeDay {
		entry.BlockedTimes = nil
		entry.BlockedRanges = nil
		return nil
	}

	seen := make(map[string]bool, len(entry.BlockedTimes))
	for _, t := range entry.BlockedTimes {
		seen[t] = true
	}
	for _, t := range req.Times {
		if !seen[t] {
			entry.BlockedTimes = append(entry.BlockedTimes, t)
			seen[t] = true
		}
	}
	sort.Strings(entry.BlockedTimes)

	for _, nr := range req.Ranges {
		if timeutil.ToMinutes(nr.End) <= timeutil.ToMinutes(nr.Start) {
			return fmt.Errorf("range end %s must be after start %s", nr.End, nr.Start)
		}
		dup := false
		for _, er := range entry.BlockedRanges {
			if er.Start == nr.Start && er.End == nr.End {
				dup = true
				break
			}
		}
		if !dup {
			entry.BlockedRanges = append(entry.BlockedRanges, nr)
		}
	}
	sort.Slice(entry.BlockedRanges, func(i, j int) bool {
		return entry.BlockedRanges[i].Start < entry.BlockedRanges[j].Start
	})

	return nil
}

func (s *service) UnblockTime(ctx context.Context, turfID uuid.UUID, date string, clockTime string) error {
	entry, err := s.repo.GetByStartDate(ctx, turfID, date)
	if err != nil {
		return err
	}

	times := entry.BlockedTimes[:0]
	for _, t := range entry.BlockedTimes {
		if t != clockTime {
			times = append(times, t)
		}
	}
	entry.BlockedTimes = times

	ranges := entry.BlockedRanges[:0]
	for _, r := range entry.BlockedRanges {
		if r.Start != clockTime {
			ranges = append(ranges, r)
		}
	}
	entry.BlockedRanges = ranges

	// Empty entry with no day span left: remove it entirely rather than
	// leaving a record that now means "whole day blocked".
	if len(entry.BlockedTimes) == 0 && len(entry.BlockedRanges) == 0 {
		return s.repo.Delete(ctx, entry.ID)
	}
	return s.repo.Save(ctx, entry)
}

func (s *service) CoveringEntries(ctx context.Context, turfID uuid.UUID, date string) ([]BlockedEntry, error) {
	return s.repo.GetCovering(ctx, turfID, date)
}

func (s *service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, turfID uuid.UUID, fromDate string) ([]BlockedEntry, error) {
	return s.repo.ListByTurf(ctx, turfID, fromDate)
}
