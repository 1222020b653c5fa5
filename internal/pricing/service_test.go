package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRuleRejectsOverlappingRecurring(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("ListByKind", mock.Anything, turfID, KindRecurring).Return([]PeakRule{
		{ID: uuid.New(), TurfID: turfID, Kind: KindRecurring, Weekdays: []string{"Monday", "Tuesday"}, StartTime: "18:00", EndTime: "21:00", Price: 1800},
	}, nil)

	_, err := svc.CreateRule(context.Background(), uuid.New(), &CreateRuleRequest{
		TurfID:    turfID,
		Kind:      string(KindRecurring),
		Weekdays:  []string{"Tuesday"},
		StartTime: "20:00",
		EndTime:   "22:00",
		Price:     1900,
	})
	assert.ErrorIs(t, err, ErrRuleOverlap)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateRuleAllowsDisjointWeekdays(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("ListByKind", mock.Anything, turfID, KindRecurring).Return([]PeakRule{
		{ID: uuid.New(), TurfID: turfID, Kind: KindRecurring, Weekdays: []string{"Monday"}, StartTime: "18:00", EndTime: "21:00", Price: 1800},
	}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*pricing.PeakRule")).Return(nil)

	rule, err := svc.CreateRule(context.Background(), uuid.New(), &CreateRuleRequest{
		TurfID:    turfID,
		Kind:      string(KindRecurring),
		Weekdays:  []string{"Friday"},
		StartTime: "18:00",
		EndTime:   "21:00",
		Price:     2000,
	})
	require.NoError(t, err)
	assert.Equal(t, KindRecurring, rule.Kind)
}

func TestCreateRuleAllowsAdjacentWindows(t *testing.T) {
	turfID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("ListByKind", mock.Anything, turfID, KindSpecificDate).Return([]PeakRule{
		{ID: uuid.New(), TurfID: turfID, Kind: KindSpecificDate, Date: "2026-09-05", StartTime: "10:00", EndTime: "12:00", Price: 1500},
	}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*pricing.PeakRule")).Return(nil)

	// [12:00, 14:00) touches [10:00, 12:00) but does not overlap it.
	_, err := svc.CreateRule(context.Background(), uuid.New(), &CreateRuleRequest{
		TurfID:    turfID,
		Kind:      string(KindSpecificDate),
		Date:      "2026-09-05",
		StartTime: "12:00",
		EndTime:   "14:00",
		Price:     1600,
	})
	require.NoError(t, err)
}

func TestCreateRuleRejectsInvertedWindow(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateRule(context.Background(), uuid.New(), &CreateRuleRequest{
		TurfID:    uuid.New(),
		Kind:      string(KindSpecificDate),
		Date:      "2026-09-05",
		StartTime: "14:00",
		EndTime:   "12:00",
		Price:     1600,
	})
	assert.ErrorIs(t, err, ErrInvalidRuleSpan)
}

func TestCreateRuleRejectsMissingDaySelector(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateRule(context.Background(), uuid.New(), &CreateRuleRequest{
		TurfID:    uuid.New(),
		Kind:      string(KindRecurring),
		StartTime: "10:00",
		EndTime:   "12:00",
		Price:     1600,
	})
	assert.ErrorIs(t, err, ErrInvalidRuleKind)
}

func TestUpdateRuleSkipsSelfInOverlapCheck(t *testing.T) {
	turfID := uuid.New()
	ruleID := uuid.New()
	repo := new(mockRepository)
	svc := NewService(repo)

	existing := &PeakRule{ID: ruleID, TurfID: turfID, Kind: KindRecurring, Weekdays: []string{"Monday"}, StartTime: "18:00", EndTime: "21:00", Price: 1800}
	repo.On("GetByID", mock.Anything, ruleID).Return(existing, nil)
	repo.On("ListByKind", mock.Anything, turfID, KindRecurring).Return([]PeakRule{*existing}, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	newPrice := 1900.0
	rule, err := svc.UpdateRule(context.Background(), ruleID, &UpdateRuleRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 1900.0, rule.Price)
}
