package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turfbook/internal/turfs"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, rule *PeakRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*PeakRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PeakRule), args.Error(1)
}

func (m *mockRepository) GetForDate(ctx context.Context, turfID uuid.UUID, date string) ([]PeakRule, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PeakRule), args.Error(1)
}

func (m *mockRepository) ListByTurf(ctx context.Context, turfID uuid.UUID) ([]PeakRule, error) {
	args := m.Called(ctx, turfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PeakRule), args.Error(1)
}

func (m *mockRepository) ListByKind(ctx context.Context, turfID uuid.UUID, kind RuleKind) ([]PeakRule, error) {
	args := m.Called(ctx, turfID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PeakRule), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, rule *PeakRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func bandedTurf() *turfs.Turf {
	return &turfs.Turf{
		ID:            uuid.New(),
		OpeningTime:   "06:00",
		ClosingTime:   "22:00",
		SlotIncrement: 60,
		BasePrice:     1000,

		WeekdayPricingEnabled: true,
		WeekdayMorning:        turfs.PriceBand{Start: "06:00", Price: 900},
		WeekdayEvening:        turfs.PriceBand{Start: "17:00", Price: 1300},

		WeekendPricingEnabled: true,
		WeekendMorning:        turfs.PriceBand{Start: "06:00", Price: 1100},
		WeekendEvening:        turfs.PriceBand{Start: "17:00", Price: 1500},
	}
}

// 2026-09-05 is a Saturday, 2026-09-07 a Monday.
const (
	saturday = "2026-09-05"
	monday   = "2026-09-07"
)

func TestPriceForSpecificDateRuleWinsOverWeekendBand(t *testing.T) {
	turf := bandedTurf()
	repo := new(mockRepository)
	r := NewResolver(repo)

	repo.On("GetForDate", mock.Anything, turf.ID, saturday).Return([]PeakRule{
		{TurfID: turf.ID, Kind: KindSpecificDate, Date: saturday, StartTime: "17:00", EndTime: "20:00", Price: 2000},
	}, nil)

	// 18:00 Saturday is inside both the specific-date rule and the weekend
	// evening band; the rule must win.
	price, err := r.PriceFor(context.Background(), turf, saturday, 18*60)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, price)
}

func TestPriceForRecurringRuleBeatsBands(t *testing.T) {
	turf := bandedTurf()
	repo := new(mockRepository)
	r := NewResolver(repo)

	repo.On("GetForDate", mock.Anything, turf.ID, monday).Return([]PeakRule{
		{TurfID: turf.ID, Kind: KindRecurring, Weekdays: []string{"Monday"}, StartTime: "18:00", EndTime: "21:00", Price: 1800},
	}, nil)

	price, err := r.PriceFor(context.Background(), turf, monday, 19*60)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, price)
}

func TestPriceForSpecificDateBeatsRecurring(t *testing.T) {
	turf := bandedTurf()
	repo := new(mockRepository)
	r := NewResolver(repo)

	repo.On("GetForDate", mock.Anything, turf.ID, monday).Return([]PeakRule{
		{TurfID: turf.ID, Kind: KindRecurring, Weekdays: []string{"Monday"}, StartTime: "18:00", EndTime: "21:00", Price: 1800},
		{TurfID: turf.ID, Kind: KindSpecificDate, Date: monday, StartTime: "18:00", EndTime: "21:00", Price: 2500},
	}, nil)

	price, err := r.PriceFor(context.Background(), turf, monday, 18*60)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, price)
}

func TestPriceForBands(t *testing.T) {
	turf := bandedTurf()
	repo := new(mockRepository)
	r := NewResolver(repo)

	repo.On("GetForDate", mock.Anything, turf.ID, mock.Anything).Return([]PeakRule{}, nil)

	tests := []struct {
		name string
		date string
		min  int
		want float64
	}{
		{"weekend evening band", saturday, 18 * 60, 1500},
		{"weekend morning band", saturday, 10 * 60, 1100},
		{"weekday evening band", monday, 18 * 60, 1300},
		{"weekday morning band", monday, 10 * 60, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := r.PriceFor(context.Background(), turf, tt.date, tt.min)
			require.NoError(t, err)
			assert.Equal(t, tt.want, price)
		})
	}
}

func TestPriceForBaseWhenBandsDisabled(t *testing.T) {
	turf := bandedTurf()
	turf.WeekdayPricingEnabled = false
	turf.WeekendPricingEnabled = false
	repo := new(mockRepository)
	r := NewResolver(repo)

	repo.On("GetForDate", mock.Anything, turf.ID, mock.Anything).Return([]PeakRule{}, nil)

	price, err := r.PriceFor(context.Background(), turf, saturday, 18*60)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, price)
}

func TestTotalStraddlesPeakBoundary(t *testing.T) {
	turf := bandedTurf()
	turf.WeekdayPricingEnabled = false
	turf.WeekendPricingEnabled = false
	repo := new(mockRepository)
	r := NewResolver(repo)

	repo.On("GetForDate", mock.Anything, turf.ID, monday).Return([]PeakRule{
		{TurfID: turf.ID, Kind: KindRecurring, Weekdays: []string{"Monday"}, StartTime: "18:00", EndTime: "21:00", Price: 1800},
	}, nil)

	// 17:00-19:00: the 17:00 slot is base, the 18:00 slot is peak.
	total, err := r.Total(context.Background(), turf, monday, 17*60, 2)
	require.NoError(t, err)
	assert.Equal(t, 1000.0+1800.0, total)
}

func TestPriceForInvalidDate(t *testing.T) {
	turf := bandedTurf()
	repo := new(mockRepository)
	r := NewResolver(repo)

	repo.On("GetForDate", mock.Anything, turf.ID, "not-a-date").Return([]PeakRule{}, nil)

	_, err := r.PriceFor(context.Background(), turf, "not-a-date", 600)
	assert.Error(t, err)
}
