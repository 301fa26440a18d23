// FastBite ordering API server.
//
// @title           FastBite Ordering API
// @version         1.0
// @description     REST API for the FastBite food ordering platform.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fastbite/ordering-api/internal/api"
	"github.com/fastbite/ordering-api/internal/infrastructure/config"
	"github.com/fastbite/ordering-api/internal/infrastructure/db/postgres"
	"github.com/fastbite/ordering-api/internal/infrastructure/db/redis"
	"github.com/fastbite/ordering-api/internal/infrastructure/storage"
	"github.com/fastbite/ordering-api/pkg/logger"
)

type initer interface {
	Init(ctx context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.New(logger.Options{})
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	// Table creation order follows the foreign keys: users, categories and
	// tags before products, products before meals and orders, meals before
	// the daily menu.
	repos := []initer{
		postgres.NewUserRepository(pool),
		postgres.NewCategoryRepository(pool),
		postgres.NewTagRepository(pool),
		postgres.NewProductRepository(pool),
		postgres.NewMealRepository(pool),
		postgres.NewOrderRepository(pool),
		postgres.NewFeedbackRepository(pool),
		postgres.NewCouponRepository(pool),
		postgres.NewAnnouncementRepository(pool),
		postgres.NewDailyMenuRepository(pool),
		postgres.NewLocationRepository(pool),
	}
	for _, r := range repos {
		if err := r.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("init schema")
		}
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	images, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("setup upload storage")
	}

	e := api.NewRouter(cfg, pool, rdb, images, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
}
