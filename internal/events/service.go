package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"turfbook/internal/shared/timeutil"
)

var (
	ErrInvalidEventSpan   = errors.New("event end time must be after start time")
	ErrInvalidEventDates  = errors.New("event end date must not precede start date")
	ErrInvalidEventStatus = errors.New("invalid event status")
)

type Service interface {
	Create(ctx context.Context, adminID uuid.UUID, req *CreateEventRequest) (*Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	ListByTurf(ctx context.Context, turfID uuid.UUID) ([]Event, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*Event, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Occupies reports whether any scheduled event on the turf covers the
	// date and overlaps the candidate [startMin, endMin) interval. Used by
	// the availability and admission paths.
	Occupies(ctx context.Context, turfID uuid.UUID, date string, startMin, endMin int) (bool, error)

	// ActiveOnDate returns the scheduled events covering the date, for
	// callers that test many candidate intervals in one pass.
	ActiveOnDate(ctx context.Context, turfID uuid.UUID, date string) ([]Event, error)
}

type service struct {
	repo Repository
}

// NewService creates a new events service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, adminID uuid.UUID, req *CreateEventRequest) (*Event, error) {
	event := &Event{
		TurfID:      req.TurfID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      StatusScheduled,
		CreatedBy:   adminID,
	}
	if event.EndDate == "" {
		event.EndDate = event.StartDate
	}

	if err := validateSpan(event); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByTurf(ctx context.Context, turfID uuid.UUID) ([]Event, error) {
	return s.repo.ListByTurf(ctx, turfID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Status != nil {
		status := Status(*req.Status)
		switch status {
		case StatusScheduled, StatusCancelled, StatusCompleted:
			event.Status = status
		default:
			return nil, ErrInvalidEventStatus
		}
	}

	if err := validateSpan(event); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Occupies(ctx context.Context, turfID uuid.UUID, date string, startMin, endMin int) (bool, error) {
	active, err := s.repo.GetActiveOnDate(ctx, turfID, date)
	if err != nil {
		return false, fmt.Errorf("failed to load events: %w", err)
	}
	for i := range active {
		if active[i].OccupiesInterval(startMin, endMin) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) ActiveOnDate(ctx context.Context, turfID uuid.UUID, date string) ([]Event, error) {
	return s.repo.GetActiveOnDate(ctx, turfID, date)
}

func validateSpan(event *Event) error {
	if event.EndDate < event.StartDate {
		return ErrInvalidEventDates
	}
	if timeutil.ToMinutes(event.EndTime) <= timeutil.ToMinutes(event.StartTime) {
		return ErrInvalidEventSpan
	}
	return nil
}
