package turfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTurfNotFound = errors.New("turf not found")

// Repository interface for turf operations
type Repository interface {
	Create(ctx context.Context, turf *Turf) error
	GetByID(ctx context.Context, id uuid.UUID) (*Turf, error)
	GetAll(ctx context.Context, query TurfListQuery) ([]Turf, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Turf, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new turf repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, turf *Turf) error {
	return r.db.WithContext(ctx).Create(turf).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Turf, error) {
	var turf Turf
	err := r.db.WithContext(ctx).First(&turf, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTurfNotFound
		}
		return nil, err
	}
	return &turf, nil
}

func (r *repository) GetAll(ctx context.Context, query TurfListQuery) ([]Turf, int64, error) {
	var turfs []Turf
	var total int64

	q := r.db.WithContext(ctx).Model(&Turf{})

	if query.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", query.Search)
		q = q.Where("name ILIKE ? OR location ILIKE ?", pattern, pattern)
	}
	if query.Enabled != nil {
		q = q.Where("enabled = ?", *query.Enabled)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	if err := q.Order("name ASC").Offset(offset).Limit(query.Limit).Find(&turfs).Error; err != nil {
		return nil, 0, err
	}

	return turfs, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Turf, error) {
	result := r.db.WithContext(ctx).Model(&Turf{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTurfNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Turf{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTurfNotFound
	}
	return nil
}
