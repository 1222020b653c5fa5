package events

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	// GetActiveOnDate returns scheduled events whose date span covers the
	// given date. Their clock windows make slots unavailable.
	GetActiveOnDate(ctx context.Context, turfID uuid.UUID, date string) ([]Event, error)
	ListByTurf(ctx context.Context, turfID uuid.UUID) ([]Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new events repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetActiveOnDate(ctx context.Context, turfID uuid.UUID, date string) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("turf_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			turfID, StatusScheduled, date, date).
		Find(&events).Error
	return events, err
}

func (r *repository) ListByTurf(ctx context.Context, turfID uuid.UUID) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("turf_id = ?", turfID).
		Order("start_date, start_time").
		Find(&events).Error
	return events, err
}

func (r *repository) Update(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
