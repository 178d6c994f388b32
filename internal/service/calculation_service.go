package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/verumrexo/tip-harmony/internal/dto"
	"github.com/verumrexo/tip-harmony/internal/model"
	"github.com/verumrexo/tip-harmony/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const analyticsCacheTTL = 5 * time.Minute

type CalculationService interface {
	Create(ctx context.Context, req dto.CreateCalculationRequest) (*dto.CalculationResponse, error)
	List(ctx context.Context) ([]dto.CalculationResponse, error)
	Analytics(ctx context.Context, days int) (*dto.AnalyticsResponse, error)
}

type calculationService struct {
	repo repository.CalculationRepository
	rdb  *redis.Client // nil disables caching (unit test mode)
}

func NewCalculationService(repo repository.CalculationRepository, rdb *redis.Client) CalculationService {
	return &calculationService{repo: repo, rdb: rdb}
}

// Create runs the allocation engine and persists the result as one
// immutable history record. The per-person values are stored rounded to
// four places — a display snapshot, not a recoverable fraction.
func (s *calculationService) Create(ctx context.Context, req dto.CreateCalculationRequest) (*dto.CalculationResponse, error) {
	alloc := SplitTips(req.TotalAmount, req.WaiterCount, req.CookCount, req.DishwasherCount)

	calc := &model.Calculation{
		TotalAmount:         req.TotalAmount,
		WaiterCount:         req.WaiterCount,
		CookCount:           req.CookCount,
		DishwasherCount:     req.DishwasherCount,
		WaiterPerPerson:     alloc.WaiterPerPerson.Round(4),
		CookPerPerson:       alloc.CookPerPerson.Round(4),
		DishwasherPerPerson: alloc.DishwasherPerPerson.Round(4),
	}
	if err := s.repo.Create(ctx, calc); err != nil {
		return nil, err
	}

	s.invalidateAnalytics(ctx)
	return calculationToResponse(calc), nil
}

func (s *calculationService) List(ctx context.Context) ([]dto.CalculationResponse, error) {
	calcs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CalculationResponse, 0, len(calcs))
	for i := range calcs {
		resp = append(resp, *calculationToResponse(&calcs[i]))
	}
	return resp, nil
}

// Analytics returns the four chart views for the selected window, cached
// in Redis for a few minutes and invalidated whenever a new calculation
// is saved. A nil response (empty history) is never cached.
func (s *calculationService) Analytics(ctx context.Context, days int) (*dto.AnalyticsResponse, error) {
	window, err := ParseWindow(days)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("analytics:%d", window)
	if s.rdb != nil {
		if b, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached dto.AnalyticsResponse
			if json.Unmarshal(b, &cached) == nil {
				return &cached, nil
			}
		}
	}

	history, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := Analyze(history, window, time.Now())

	if resp != nil && s.rdb != nil {
		if b, err := json.Marshal(resp); err == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, analyticsCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *calculationService) invalidateAnalytics(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	for days := range validWindows {
		if err := s.rdb.Del(ctx, fmt.Sprintf("analytics:%d", days)).Err(); err != nil {
			log.Warn().Err(err).Int("window", days).Msg("failed to invalidate analytics cache")
		}
	}
}

// calculationToResponse rebuilds the role breakdown for a saved record.
// Shares and role totals follow deterministically from the rule, but the
// per-person values come from the stored snapshots — they are what was
// shown at save time, not a recomputation.
func calculationToResponse(c *model.Calculation) *dto.CalculationResponse {
	alloc := SplitTips(c.TotalAmount, c.WaiterCount, c.CookCount, c.DishwasherCount)
	return &dto.CalculationResponse{
		ID:          c.ID.String(),
		TotalAmount: c.TotalAmount,
		Waiters: dto.RoleShare{
			SharePct:  alloc.WaiterShare,
			Total:     alloc.WaiterTotal,
			Count:     c.WaiterCount,
			PerPerson: c.WaiterPerPerson,
		},
		Cooks: dto.RoleShare{
			SharePct:  alloc.CookShare,
			Total:     alloc.CookTotal,
			Count:     c.CookCount,
			PerPerson: c.CookPerPerson,
		},
		Dishwashers: dto.RoleShare{
			SharePct:  alloc.DishwasherShare,
			Total:     alloc.DishwasherTotal,
			Count:     c.DishwasherCount,
			PerPerson: c.DishwasherPerPerson,
		},
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
