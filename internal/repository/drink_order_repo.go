package repository

import (
	"context"

	"github.com/verumrexo/tip-harmony/internal/model"

	"gorm.io/gorm"
)

type DrinkOrderRepository interface {
	Create(ctx context.Context, o *model.DrinkOrder) error
	// ListByMonth returns every order created in the given calendar month,
	// newest first. Month is 1-indexed.
	ListByMonth(ctx context.Context, month, year int) ([]model.DrinkOrder, error)
}

type drinkOrderRepo struct{ db *gorm.DB }

func NewDrinkOrderRepository(db *gorm.DB) DrinkOrderRepository {
	return &drinkOrderRepo{db: db}
}

func (r *drinkOrderRepo) Create(ctx context.Context, o *model.DrinkOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *drinkOrderRepo) ListByMonth(ctx context.Context, month, year int) ([]model.DrinkOrder, error) {
	var orders []model.DrinkOrder
	err := r.db.WithContext(ctx).
		Where("EXTRACT(MONTH FROM created_at) = ? AND EXTRACT(YEAR FROM created_at) = ?", month, year).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
