package blocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("blocked entry not found")

// Repository interface for blocked entry operations
type Repository interface {
	// GetCovering returns every entry that applies to (turf, date): the
	// exact-date entry plus any date-range entry spanning it.
	GetCovering(ctx context.Context, turfID uuid.UUID, date string) ([]BlockedEntry, error)

	// GetByStartDate returns the single entry keyed by (turf, start date),
	// or ErrEntryNotFound.
	GetByStartDate(ctx context.Context, turfID uuid.UUID, startDate string) (*BlockedEntry, error)

	Create(ctx context.Context, entry *BlockedEntry) error
	Save(ctx context.Context, entry *BlockedEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTurf(ctx context.Context, turfID uuid.UUID, fromDate string) ([]BlockedEntry, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new blocked entry repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCovering(ctx context.Context, turfID uuid.UUID, date string) ([]BlockedEntry, error) {
	var entries []BlockedEntry
	err := r.db.WithContext(ctx).
		Where("turf_id = ?", turfID).
		Where("(end_date IS NULL AND start_date = ?) OR (end_date IS NOT NULL AND start_date <= ? AND end_date >= ?)",
			date, date, date).
		Find(&entries).Error
	return entries, err
}

func (r *repository) GetByStartDate(ctx context.Context, turfID uuid.UUID, startDate string) (*BlockedEntry, error) {
	var entry BlockedEntry
	err := r.db.WithContext(ctx).
		Where("turf_id = ? AND start_date = ?", turfID, startDate).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *repository) Create(ctx context.Context, entry *BlockedEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) Save(ctx context.Context, entry *BlockedEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&BlockedEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *repository) ListByTurf(ctx context.Context, turfID uuid.UUID, fromDate string) ([]BlockedEntry, error) {
	var entries []BlockedEntry
	q := r.db.WithContext(ctx).Where("turf_id = ?", turfID)
	if fromDate != "" {
		q = q.Where("start_date >= ? OR (end_date IS NOT NULL AND end_date >= ?)", fromDate, fromDate)
	}
	err := q.Order("start_date ASC").Find(&entries).Error
	return entries, err
}
