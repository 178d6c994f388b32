package service

import (
	"context"
	"testing"
	"time"

	"github.com/verumrexo/tip-harmony/internal/dto"
	"github.com/verumrexo/tip-harmony/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCalcRepo is an in-memory stand-in; newest first like the real one.
type fakeCalcRepo struct {
	calcs []model.Calculation
}

func (r *fakeCalcRepo) Create(_ context.Context, c *model.Calculation) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	r.calcs = append([]model.Calculation{*c}, r.calcs...)
	return nil
}

func (r *fakeCalcRepo) List(_ context.Context) ([]model.Calculation, error) {
	return r.calcs, nil
}

func TestCalculationServiceCreate(t *testing.T) {
	repo := &fakeCalcRepo{}
	svc := NewCalculationService(repo, nil)

	resp, err := svc.Create(context.Background(), dto.CreateCalculationRequest{
		TotalAmount:     dec("100"),
		WaiterCount:     2,
		CookCount:       1,
		DishwasherCount: 1,
	})
	require.NoError(t, err)

	assert.True(t, resp.Waiters.SharePct.Equal(dec("0.75")))
	assert.True(t, resp.Waiters.Total.Equal(dec("75")))
	assert.True(t, resp.Waiters.PerPerson.Equal(dec("37.5")))
	assert.True(t, resp.Cooks.PerPerson.Equal(dec("20")))
	assert.True(t, resp.Dishwashers.PerPerson.Equal(dec("5")))

	require.Len(t, repo.calcs, 1)
	saved := repo.calcs[0]
	assert.Equal(t, 2, saved.WaiterCount)
	assert.True(t, saved.WaiterPerPerson.Equal(dec("37.5")))
}

func TestCalculationServiceCreateRoundsSnapshots(t *testing.T) {
	repo := &fakeCalcRepo{}
	svc := NewCalculationService(repo, nil)

	// 25% of 100 over 3 cooks is a repeating fraction; the stored snapshot
	// is rounded to four places and echoed back as-is.
	resp, err := svc.Create(context.Background(), dto.CreateCalculationRequest{
		TotalAmount: dec("100"),
		WaiterCount: 1,
		CookCount:   3,
	})
	require.NoError(t, err)

	assert.True(t, resp.Cooks.PerPerson.Equal(dec("8.3333")), "per person: %s", resp.Cooks.PerPerson)
	assert.True(t, repo.calcs[0].CookPerPerson.Equal(dec("8.3333")))
}

func TestCalculationServiceList(t *testing.T) {
	repo := &fakeCalcRepo{}
	svc := NewCalculationService(repo, nil)

	for _, amount := range []string{"100", "50.50"} {
		_, err := svc.Create(context.Background(), dto.CreateCalculationRequest{
			TotalAmount: dec(amount),
			WaiterCount: 1,
			CookCount:   1,
		})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first.
	assert.True(t, list[0].TotalAmount.Equal(dec("50.50")))
	assert.True(t, list[1].TotalAmount.Equal(dec("100")))
}

func TestCalculationServiceAnalytics(t *testing.T) {
	repo := &fakeCalcRepo{}
	svc := NewCalculationService(repo, nil)

	resp, err := svc.Analytics(context.Background(), 0)
	require.NoError(t, err)
	assert.Nil(t, resp, "empty history yields no analytics")

	_, err = svc.Create(context.Background(), dto.CreateCalculationRequest{
		TotalAmount: dec("80"),
		WaiterCount: 1,
		CookCount:   1,
	})
	require.NoError(t, err)

	resp, err = svc.Analytics(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.TrendData, 7)
	assert.Equal(t, 1, resp.DistributionData[1].Count) // 80 lands in 50-100

	_, err = svc.Analytics(context.Background(), 13)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
