package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/profitlens/storefront-analytics-api/infrastructure/cache"
	"github.com/profitlens/storefront-analytics-api/infrastructure/database/postgres"
	"github.com/profitlens/storefront-analytics-api/infrastructure/repository"
	"github.com/profitlens/storefront-analytics-api/internal/api"
	"github.com/profitlens/storefront-analytics-api/internal/config"
	"github.com/profitlens/storefront-analytics-api/internal/scheduler"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/analyzing"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/costing"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/store"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeRepo := repository.NewStoreRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	analyticsRepo := repository.NewDailyAnalyticsRepository(pgConn)
	adSpendRepo := repository.NewAdSpendRepository(pgConn)
	otherCostRepo := repository.NewOtherCostRepository(pgConn)
	variantRepo := repository.NewVariantRepository(pgConn)

	profitCalculator := analyzing.NewProfitCalculator(
		cfg.Fees,
		orderRepo,
		variantRepo,
		adSpendRepo,
		otherCostRepo,
	)

	analyticsService := analyzing.NewService(
		storeRepo,
		orderRepo,
		analyticsRepo,
		profitCalculator,
	)

	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to Redis")
		}
		defer redisCache.Close()

		analyticsService = analyticsService.WithCache(redisCache)
		logrus.Info("analytics query cache enabled")
	}

	storeService := store.NewService(storeRepo, orderRepo)
	costService := costing.NewService(storeRepo, orderRepo, variantRepo, adSpendRepo, otherCostRepo)

	analyticsSyncService := scheduler.NewAnalyticsSyncService(
		storeRepo,
		analyticsRepo,
		analyticsService,
		cfg,
	)

	if err := analyticsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start analytics sync scheduler")
	} else {
		logrus.Info("analytics sync scheduler started")
	}

	server, err := api.New(
		cfg,
		storeService,
		analyticsService,
		costService,
		analyticsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
