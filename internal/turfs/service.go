package turfs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/shared/constants"
	"turfbook/internal/shared/timeutil"
	"turfbook/pkg/cache"
)

var (
	ErrInvalidWindow    = errors.New("closing time must be after opening time")
	ErrWindowNotAligned = errors.New("operating window must be a whole number of slot increments")
	ErrInvalidSlotSpan  = errors.New("min slots cannot exceed max slots")
)

// Service interface defines the contract for turf business logic
type Service interface {
	Create(ctx context.Context, adminID uuid.UUID, req *CreateTurfRequest) (*TurfResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Turf, error)
	List(ctx context.Context, query TurfListQuery) (*PaginatedTurfs, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTurfRequest) (*TurfResponse, error)
	SetStatus(ctx context.Context, id uuid.UUID, req *SetStatusRequest) (*TurfResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService creates a new turf service instance. cache may be nil; reads
// then go straight to the repository.
func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func turfCacheKey(id uuid.UUID) string {
	return constants.BuildTurfDetailKey(id.String())
}

func (s *service) Create(ctx context.Context, adminID uuid.UUID, req *CreateTurfRequest) (*TurfResponse, error) {
	turf := &Turf{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		OpeningTime:   req.OpeningTime,
		ClosingTime:   req.ClosingTime,
		SlotIncrement: req.SlotIncrement,
		MinSlots:      req.MinSlots,
		MaxSlots:      req.MaxSlots,
		BasePrice:     req.BasePrice,
		Enabled:       true,
		CreatedBy:     adminID,
	}
	if turf.SlotIncrement == 0 {
		turf.SlotIncrement = 60
	}
	if turf.MinSlots == 0 {
		turf.MinSlots = 1
	}
	if turf.MaxSlots == 0 {
		turf.MaxSlots = 3
	}

	turf.WeekdayPricingEnabled = req.WeekdayPricingEnabled
	if req.WeekdayMorning != nil {
		turf.WeekdayMorning = PriceBand{Start: req.WeekdayMorning.Start, Price: req.WeekdayMorning.Price}
	}
	if req.WeekdayEvening != nil {
		turf.WeekdayEvening = PriceBand{Start: req.WeekdayEvening.Start, Price: req.WeekdayEvening.Price}
	}
	turf.WeekendPricingEnabled = req.WeekendPricingEnabled
	if req.WeekendMorning != nil {
		turf.WeekendMorning = PriceBand{Start: req.WeekendMorning.Start, Price: req.WeekendMorning.Price}
	}
	if req.WeekendEvening != nil {
		turf.WeekendEvening = PriceBand{Start: req.WeekendEvening.Start, Price: req.WeekendEvening.Price}
	}

	if err := validateWindow(turf); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, turf); err != nil {
		return nil, fmt.Errorf("failed to create turf: %w", err)
	}

	s.invalidateLists(ctx)
	resp := turf.ToResponse()
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Turf, error) {
	if s.cache != nil {
		var cached Turf
		err := s.cache.GetOrSet(ctx, turfCacheKey(id), s.cacheTTL, func() (interface{}, error) {
			return s.repo.GetByID(ctx, id)
		}, &cached)
		if err == nil {
			return &cached, nil
		}
		if errors.Is(err, ErrTurfNotFound) {
			return nil, err
		}
		// cache trouble is not fatal for reads
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, query TurfListQuery) (*PaginatedTurfs, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	// Only plain catalog pages are cached; filtered views go straight to
	// the repository.
	if s.cache != nil && query.Search == "" && query.Enabled == nil {
		var cached PaginatedTurfs
		key := constants.BuildTurfListKey(query.Page, query.Limit)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_TURFS_LIST, func() (interface{}, error) {
			return s.listFromRepo(ctx, query)
		}, &cached)
		if err == nil {
			return &cached, nil
		}
	}
	return s.listFromRepo(ctx, query)
}

func (s *service) listFromRepo(ctx context.Context, query TurfListQuery) (*PaginatedTurfs, error) {
	turfs, total, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list turfs: %w", err)
	}

	responses := make([]TurfResponse, len(turfs))
	for i := range turfs {
		responses[i] = turfs[i].ToResponse()
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))
	return &PaginatedTurfs{
		Turfs:      responses,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateTurfRequest) (*TurfResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate the prospective operating window before writing anything.
	prospective := *current
	if req.OpeningTime != nil {
		prospective.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		prospective.ClosingTime = *req.ClosingTime
	}
	if req.SlotIncrement != nil {
		prospective.SlotIncrement = *req.SlotIncrement
	}
	if req.MinSlots != nil {
		prospective.MinSlots = *req.MinSlots
	}
	if req.MaxSlots != nil {
		prospective.MaxSlots = *req.MaxSlots
	}
	if err := validateWindow(&prospective); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.OpeningTime != nil {
		updates["opening_time"] = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		updates["closing_time"] = *req.ClosingTime
	}
	if req.SlotIncrement != nil {
		updates["slot_increment"] = *req.SlotIncrement
	}
	if req.MinSlots != nil {
		updates["min_slots"] = *req.MinSlots
	}
	if req.MaxSlots != nil {
		updates["max_slots"] = *req.MaxSlots
	}
	if req.BasePrice != nil {
		updates["base_price"] = *req.BasePrice
	}
	if req.WeekdayPricingEnabled != nil {
		updates["weekday_pricing_enabled"] = *req.WeekdayPricingEnabled
	}
	if req.WeekdayMorning != nil {
		updates["weekday_morning_start"] = req.WeekdayMorning.Start
		updates["weekday_morning_price"] = req.WeekdayMorning.Price
	}
	if req.WeekdayEvening != nil {
		updates["weekday_evening_start"] = req.WeekdayEvening.Start
		updates["weekday_evening_price"] = req.WeekdayEvening.Price
	}
	if req.WeekendPricingEnabled != nil {
		updates["weekend_pricing_enabled"] = *req.WeekendPricingEnabled
	}
	if req.WeekendMorning != nil {
		updates["weekend_morning_start"] = req.WeekendMorning.Start
		updates["weekend_morning_price"] = req.WeekendMorning.Price
	}
	if req.WeekendEvening != nil {
		updates["weekend_evening_start"] = req.WeekendEvening.Start
		updates["weekend_evening_price"] = req.WeekendEvening.Price
	}

	turf, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	resp := turf.ToResponse()
	return &resp, nil
}

func (s *service) SetStatus(ctx context.Context, id uuid.UUID, req *SetStatusRequest) (*TurfResponse, error) {
	updates := map[string]interface{}{
		"enabled":         req.Enabled,
		"disabled_reason": "",
	}
	if !req.Enabled {
		updates["disabled_reason"] = req.Reason
	}

	turf, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	resp := turf.ToResponse()
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	// Drops the detail key and any other cached view carrying this id.
	_ = s.cache.DeletePattern(ctx, constants.BuildTurfInvalidationPattern(id.String()))
	s.invalidateLists(ctx)
}

func (s *service) invalidateLists(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, constants.BuildTurfListInvalidationPattern())
	}
}

func validateWindow(turf *Turf) error {
	opening := timeutil.ToMinutes(turf.OpeningTime)
	closing := timeutil.ToMinutes(turf.ClosingTime)
	if closing <= opening {
		return ErrInvalidWindow
	}
	if (closing-opening)%turf.SlotIncrement != 0 {
		return ErrWindowNotAligned
	}
	if turf.MinSlots > turf.MaxSlots {
		return ErrInvalidSlotSpan
	}
	return nil
}
