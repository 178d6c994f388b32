package repository

import (
	"context"

	"github.com/verumrexo/tip-harmony/internal/model"

	"gorm.io/gorm"
)

// CalculationRepository owns the append-only tip split history.
// There is deliberately no Update or Delete.
type CalculationRepository interface {
	Create(ctx context.Context, c *model.Calculation) error
	// List returns the full history, newest first. Analytics loads everything
	// and filters in memory — history volumes are small (one row per shift).
	List(ctx context.Context) ([]model.Calculation, error)
}

type calculationRepo struct{ db *gorm.DB }

func NewCalculationRepository(db *gorm.DB) CalculationRepository {
	return &calculationRepo{db: db}
}

func (r *calculationRepo) Create(ctx context.Context, c *model.Calculation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *calculationRepo) List(ctx context.Context) ([]model.Calculation, error) {
	var calcs []model.Calculation
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&calcs).Error
	return calcs, err
}
