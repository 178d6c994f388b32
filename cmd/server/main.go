package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/verumrexo/tip-harmony/internal/config"
	"github.com/verumrexo/tip-harmony/internal/infra"
	"github.com/verumrexo/tip-harmony/internal/repository"
	"github.com/verumrexo/tip-harmony/internal/router"
	"github.com/verumrexo/tip-harmony/internal/service"
	"github.com/verumrexo/tip-harmony/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title        Tip Harmony API
// @version      1.0
// @description  Tip distribution, analytics and drink write-off reporting for a small restaurant team.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.Env)

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	policy := service.NewStackingPolicy(cfg)

	calcRepo := repository.NewCalculationRepository(db)
	drinkRepo := repository.NewDrinkOrderRepository(db)

	calcSvc := service.NewCalculationService(calcRepo, rdb)
	drinkSvc := service.NewDrinkOrderService(drinkRepo, policy, dispatcher, cfg.ReportEmail)
	authSvc := service.NewAuthService(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reportWorker := worker.NewReportWorker(mailer, drinkSvc.MonthlyReport, cfg.ReportStoragePath, rdb)
	worker.StartWorkerPool(ctx, rdb, &worker.WorkerHandlers{Report: reportWorker}, cfg.WorkerPoolSize)

	scheduler, err := worker.StartScheduler(dispatcher, cfg.ReportEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer scheduler.Stop()

	r := router.New(cfg, db, rdb, calcSvc, drinkSvc, authSvc)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

func setupLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
