package main

// Seeds the calculations table with the two historical reference splits.
// Idempotent: does nothing when the table already has rows.

import (
	"github.com/verumrexo/tip-harmony/internal/config"
	"github.com/verumrexo/tip-harmony/internal/infra"
	"github.com/verumrexo/tip-harmony/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	var count int64
	if err := db.Model(&model.Calculation{}).Count(&count).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to count calculations")
	}
	if count > 0 {
		log.Info().Int64("existing", count).Msg("calculations already present, nothing to seed")
		return
	}

	seeds := []model.Calculation{
		{
			TotalAmount:         decimal.NewFromInt(100),
			WaiterCount:         2,
			CookCount:           1,
			DishwasherCount:     1,
			WaiterPerPerson:     decimal.RequireFromString("37.5"),
			CookPerPerson:       decimal.NewFromInt(20),
			DishwasherPerPerson: decimal.NewFromInt(5),
		},
		{
			TotalAmount:         decimal.RequireFromString("50.50"),
			WaiterCount:         1,
			CookCount:           2,
			DishwasherCount:     0,
			WaiterPerPerson:     decimal.RequireFromString("37.875"),
			CookPerPerson:       decimal.RequireFromString("6.3125"),
			DishwasherPerPerson: decimal.Zero,
		},
	}

	if err := db.Create(&seeds).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed calculations")
	}
	log.Info().Int("rows", len(seeds)).Msg("seeded calculations")
}
