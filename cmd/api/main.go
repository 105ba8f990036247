package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	adapterHTTP "github.com/somnia-labs/sleep-insights-engine/internal/adapters/handler/http"
	"github.com/somnia-labs/sleep-insights-engine/internal/adapters/repository"
	"github.com/somnia-labs/sleep-insights-engine/internal/config"
	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"
	"github.com/somnia-labs/sleep-insights-engine/internal/core/services"
	"github.com/somnia-labs/sleep-insights-engine/internal/logger"
)

const version = "1.0.0"

// @title        Sleep Insights Engine API
// @version      1.0.0
// @description  Descriptive statistics and rule-based recommendations over a sleep survey dataset.
// @BasePath     /api
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Critical: failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	var recordRepo domain.RecordRepository
	switch cfg.DataBackend {
	case config.BackendPostgres:
		zlog.Info("connecting to database")
		db, err := sqlx.Connect("pgx", cfg.DatabaseURL)
		if err != nil {
			zlog.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		recordRepo = repository.NewPostgresRecordRepository(db)
	default:
		zlog.Info("serving records from CSV", zap.String("path", cfg.SleepDataPath))
		recordRepo = repository.NewCSVRecordRepository(cfg.SleepDataPath)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			zlog.Warn("redis unreachable, rate limiting disabled", zap.Error(err))
			rdb = nil
		}
		cancel()
	}

	analysisService := services.NewAnalysisService(recordRepo)
	profileService := services.NewProfileService()

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AnalysisHandler: adapterHTTP.NewAnalysisHandler(analysisService),
		ProfileHandler:  adapterHTTP.NewProfileHandler(profileService),
		Logger:          zlog,
		Redis:           rdb,
		RateLimit:       cfg.MaxRequestsPerMin,
		StaticDir:       cfg.StaticDir,
		Version:         version,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zlog.Info("sleep insights engine running", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("critical server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("stop signal received, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("forced shutdown error", zap.Error(err))
	}

	zlog.Info("server stopped gracefully")
}
