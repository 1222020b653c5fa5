package blocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetCovering(ctx context.Context, turfID uuid.UUID, date string) ([]BlockedEntry, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BlockedEntry), args.Error(1)
}

func (m *mockRepository) GetByStartDate(ctx context.Context, turfID uuid.UUID, date string) (*BlockedEntry, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BlockedEntry), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, entry *BlockedEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockRepository) Save(ctx context.Context, entry *BlockedEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) ListByTurf(ctx context.Context, turfID uuid.UUID, fromDate string) ([]BlockedEntry, error) {
	args := m.Called(ctx, turfID, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BlockedEntry), args.Error(1)
}

func TestIsBlocked(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetCovering", mock.Anything, turfID, "2026-09-01").Return([]BlockedEntry{
		{TurfID: turfID, StartDate: "2026-09-01", BlockedTimes: []string{"18:00", "19:00"}},
	}, nil)

	blocked, err := svc.IsBlocked(context.Background(), turfID, "2026-09-01", 17*60, 19*60, 60)
	require.NoError(t, err)
	assert.True(t, blocked, "17:00-19:00 overlaps the 18:00 blocked hour")

	free, err := svc.IsBlocked(context.Background(), turfID, "2026-09-01", 16*60, 18*60, 60)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestIsBlockedNoEntries(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetCovering", mock.Anything, turfID, "2026-09-02").Return([]BlockedEntry{}, nil)

	blocked, err := svc.IsBlocked(context.Background(), turfID, "2026-09-02", 600, 660, 60)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestBlockCreatesEntry(t *testing.T) {
	turfID := uuid.New()
	adminID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByStartDate", mock.Anything, turfID, "2026-09-01").Return(nil, ErrEntryNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*blocks.BlockedEntry")).Return(nil)

	entry, err := svc.Block(context.Background(), adminID, &BlockRequest{
		TurfID: turfID,
		Date:   "2026-09-01",
		Times:  []string{"18:00", "19:00", "18:00"},
		Reason: "maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"18:00", "19:00"}, entry.BlockedTimes, "duplicates in one request collapse")
	assert.Equal(t, adminID, entry.CreatedBy)
	repo.AssertCalled(t, "Create", mock.Anything, entry)
}

func TestBlockMergesIntoExistingEntry(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	existing := &BlockedEntry{
		ID:           uuid.New(),
		TurfID:       turfID,
		StartDate:    "2026-09-01",
		BlockedTimes: []string{"18:00"},
	}
	repo.On("GetByStartDate", mock.Anything, turfID, "2026-09-01").Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	entry, err := svc.Block(context.Background(), uuid.New(), &BlockRequest{
		TurfID: turfID,
		Date:   "2026-09-01",
		Times:  []string{"18:00", "20:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"18:00", "20:00"}, entry.BlockedTimes, "blocking the same time twice yields one deduplicated set")
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestBlockWholeDayClearsFinerState(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	existing := &BlockedEntry{
		ID:            uuid.New(),
		TurfID:        turfID,
		StartDate:     "2026-09-01",
		BlockedTimes:  []string{"18:00"},
		BlockedRanges: []TimeRange{{Start: "10:00", End: "12:00"}},
	}
	repo.On("GetByStartDate", mock.Anything, turfID, "2026-09-01").Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	entry, err := svc.Block(context.Background(), uuid.New(), &BlockRequest{
		TurfID:   turfID,
		Date:     "2026-09-01",
		WholeDay: true,
	})
	require.NoError(t, err)
	assert.True(t, entry.IsWholeDay())
}

func TestBlockRejectsEmptyRequest(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.Block(context.Background(), uuid.New(), &BlockRequest{
		TurfID: uuid.New(),
		Date:   "2026-09-01",
	})
	assert.ErrorIs(t, err, ErrNothingToBlock)
	repo.AssertNotCalled(t, "Create")
}

func TestBlockRejectsInvertedRange(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByStartDate", mock.Anything, turfID, "2026-09-01").Return(nil, ErrEntryNotFound)

	_, err := svc.Block(context.Background(), uuid.New(), &BlockRequest{
		TurfID: turfID,
		Date:   "2026-09-01",
		Ranges: []TimeRange{{Start: "12:00", End: "10:00"}},
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create")
}

func TestUnblockTimeRemovesFromSet(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	existing := &BlockedEntry{
		ID:           uuid.New(),
		TurfID:       turfID,
		StartDate:    "2026-09-01",
		BlockedTimes: []string{"18:00", "19:00"},
	}
	repo.On("GetByStartDate", mock.Anything, turfID, "2026-09-01").Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	err := svc.UnblockTime(context.Background(), turfID, "2026-09-01", "18:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"19:00"}, existing.BlockedTimes)
	repo.AssertNotCalled(t, "Delete")
}

func TestUnblockLastTimeDeletesEntry(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	existing := &BlockedEntry{
		ID:           uuid.New(),
		TurfID:       turfID,
		StartDate:    "2026-09-01",
		BlockedTimes: []string{"18:00"},
	}
	repo.On("GetByStartDate", mock.Anything, turfID, "2026-09-01").Return(existing, nil)
	repo.On("Delete", mock.Anything, existing.ID).Return(nil)

	err := svc.UnblockTime(context.Background(), turfID, "2026-09-01", "18:00")
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Save")
	repo.AssertCalled(t, "Delete", mock.Anything, existing.ID)
}
