package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"turfbook/internal/shared/timeutil"
)

var (
	ErrRuleOverlap     = errors.New("peak rule overlaps an existing rule")
	ErrInvalidRuleSpan = errors.New("peak rule end time must be after start time")
	ErrInvalidRuleKind = errors.New("invalid peak rule kind")
)

// Service is the administrator-facing side of pricing: rule CRUD with
// write-time overlap validation, so the resolver can trust its input.
type Service interface {
	CreateRule(ctx context.Context, adminID uuid.UUID, req *CreateRuleRequest) (*PeakRule, error)
	GetRule(ctx context.Context, id uuid.UUID) (*PeakRule, error)
	ListRules(ctx context.Context, turfID uuid.UUID) ([]PeakRule, error)
	UpdateRule(ctx context.Context, id uuid.UUID, req *UpdateRuleRequest) (*PeakRule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new pricing service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRule(ctx context.Context, adminID uuid.UUID, req *CreateRuleRequest) (*PeakRule, error) {
	rule := &PeakRule{
		TurfID:    req.TurfID,
		Kind:      RuleKind(req.Kind),
		Weekdays:  req.Weekdays,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
		CreatedBy: adminID,
	}

	if err := s.validate(ctx, rule, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create peak rule: %w", err)
	}
	return rule, nil
}

func (s *service) GetRule(ctx context.Context, id uuid.UUID) (*PeakRule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListRules(ctx context.Context, turfID uuid.UUID) ([]PeakRule, error) {
	return s.repo.ListByTurf(ctx, turfID)
}

func (s *service) UpdateRule(ctx context.Context, id uuid.UUID, req *UpdateRuleRequest) (*PeakRule, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Weekdays != nil {
		rule.Weekdays = req.Weekdays
	}
	if req.Date != nil {
		rule.Date = *req.Date
	}
	if req.StartTime != nil {
		rule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		rule.EndTime = *req.EndTime
	}
	if req.Price != nil {
		rule.Price = *req.Price
	}

	if err := s.validate(ctx, rule, rule.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to update peak rule: %w", err)
	}
	return rule, nil
}

func (s *service) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validate enforces the invariant the resolver relies on: within one
// (turf, kind), no two rules with overlapping day coverage may have
// overlapping time windows. excludeID skips the rule being updated.
func (s *service) validate(ctx context.Context, rule *PeakRule, excludeID uuid.UUID) error {
	switch rule.Kind {
	case KindRecurring:
		if len(rule.Weekdays) == 0 {
			return fmt.Errorf("%w: recurring rule needs at least one weekday", ErrInvalidRuleKind)
		}
		rule.Date = ""
	case KindSpecificDate:
		if rule.Date == "" {
			return fmt.Errorf("%w: specific-date rule needs a date", ErrInvalidRuleKind)
		}
		rule.Weekdays = nil
	default:
		return ErrInvalidRuleKind
	}

	start := timeutil.ToMinutes(rule.StartTime)
	end := timeutil.ToMinutes(rule.EndTime)
	if end <= start {
		return ErrInvalidRuleSpan
	}

	siblings, err := s.repo.ListByKind(ctx, rule.TurfID, rule.Kind)
	if err != nil {
		return fmt.Errorf("failed to load existing rules: %w", err)
	}
	for i := range siblings {
		other := &siblings[i]
		if other.ID == excludeID {
			continue
		}
		if !sameDays(rule, other) {
			continue
		}
		if timeutil.Overlaps(start, end, timeutil.ToMinutes(other.StartTime), timeutil.ToMinutes(other.EndTime)) {
			return fmt.Errorf("%w: conflicts with rule %s", ErrRuleOverlap, other.ID)
		}
	}
	return nil
}

func sameDays(a, b *PeakRule) bool {
	if a.Kind == KindSpecificDate {
		return a.Date == b.Date
	}
	for _, day := range a.Weekdays {
		for _, otherDay := range b.Weekdays {
			if day == otherDay {
				return true
			}
		}
	}
	return false
}
