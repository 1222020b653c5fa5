package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRuleNotFound = errors.New("peak rule not found")

type Repository interface {
	Create(ctx context.Context, rule *PeakRule) error
	GetByID(ctx context.Context, id uuid.UUID) (*PeakRule, error)
	// GetForDate returns the rules that can apply on the given date: every
	// recurring rule for the turf plus specific-date rules pinned to it.
	GetForDate(ctx context.Context, turfID uuid.UUID, date string) ([]PeakRule, error)
	ListByTurf(ctx context.Context, turfID uuid.UUID) ([]PeakRule, error)
	ListByKind(ctx context.Context, turfID uuid.UUID, kind RuleKind) ([]PeakRule, error)
	Update(ctx context.Context, rule *PeakRule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new pricing repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rule *PeakRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*PeakRule, error) {
	var rule PeakRule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}
	return &rule, nil
}

func (r *repository) GetForDate(ctx context.Context, turfID uuid.UUID, date string) ([]PeakRule, error) {
	var rules []PeakRule
	err := r.db.WithContext(ctx).
		Where("turf_id = ? AND (kind = ? OR (kind = ? AND date = ?))",
			turfID, KindRecurring, KindSpecificDate, date).
		Find(&rules).Error
	return rules, err
}

func (r *repository) ListByTurf(ctx context.Context, turfID uuid.UUID) ([]PeakRule, error) {
	var rules []PeakRule
	err := r.db.WithContext(ctx).
		Where("turf_id = ?", turfID).
		Order("kind, date, start_time").
		Find(&rules).Error
	return rules, err
}

func (r *repository) ListByKind(ctx context.Context, turfID uuid.UUID, kind RuleKind) ([]PeakRule, error) {
	var rules []PeakRule
	err := r.db.WithContext(ctx).
		Where("turf_id = ? AND kind = ?", turfID, kind).
		Find(&rules).Error
	return rules, err
}

func (r *repository) Update(ctx context.Context, rule *PeakRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PeakRule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}
