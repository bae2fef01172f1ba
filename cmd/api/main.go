// @title Leadpath API
// @version 1.0
// @description Learning path recommendations, onboarding and chapter quiz scoring for ministry leaders.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"leadpath/cmd/api/docs"
	"leadpath/internal/adapter"
	"leadpath/internal/cache"
	"leadpath/internal/catalog"
	"leadpath/internal/config"
	"leadpath/internal/database"
	"leadpath/internal/domain"
	"leadpath/internal/handler"
	"leadpath/internal/logger"
	"leadpath/internal/repository"
	"leadpath/internal/router"
	"leadpath/internal/service"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	checks := map[string]handler.Pinger{}

	var db *sqlx.DB
	catalogRepo, err := catalogRepository(cfg, &db)
	if err != nil {
		appLogger.Fatal("Failed to initialize catalog source", zap.String("source", cfg.Catalog.Source), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
		checks["db"] = handler.PingFunc(db.PingContext)
	}
	appLogger.Info("Catalog source initialized", zap.String("source", cfg.Catalog.Source))

	// Without Redis the catalog is reloaded per request and results are not kept.
	var resultCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		resultCache = adapter.NewRedisCacheAdapter(redisClient)
		checks["cache"] = resultCache
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis address not configured, caching disabled")
	}

	catalogService := service.NewCatalogService(catalogRepo, resultCache, cfg.Cache.CatalogTTL)
	if _, err := catalogService.Catalog(context.Background()); err != nil {
		appLogger.Fatal("Failed to load catalog", zap.Error(err))
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if cfg.Catalog.Source == config.CatalogSourceFile {
		watcher := catalog.NewWatcher(cfg.Catalog.Path, service.ReloadOnChange(catalogService))
		go func() {
			if err := watcher.Run(watchCtx); err != nil {
				appLogger.Error("Catalog file watcher stopped", zap.Error(err))
			}
		}()
		appLogger.Info("Watching catalog file for changes", zap.String("path", cfg.Catalog.Path))
	}

	recommendationService := service.NewRecommendationService(catalogService, cfg.Recommendation.Strict)
	quizService := service.NewQuizService(service.NewQuizResultCacheService(resultCache, cfg.Cache.ResultTTL))
	onboardingService := service.NewOnboardingService(recommendationService)

	app := router.New(cfg.Server, router.Handlers{
		Catalog:        handler.NewCatalogHandler(catalogService),
		Recommendation: handler.NewRecommendationHandler(recommendationService),
		Onboarding:     handler.NewOnboardingHandler(onboardingService),
		Quiz:           handler.NewQuizHandler(quizService, cfg.Scoring.DefaultPassThreshold),
		Health:         handler.NewHealthHandler(checks),
	})
	docs.SwaggerInfo.BasePath = "/api"

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}

// catalogRepository picks the catalog backend. The database connection, when
// opened, is handed back through db so main can close and health-check it.
func catalogRepository(cfg *config.Config, db **sqlx.DB) (domain.CatalogRepository, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceBuiltin:
		return catalog.NewBuiltinRepository(), nil
	case config.CatalogSourceFile:
		return catalog.NewFileRepository(cfg.Catalog.Path), nil
	case config.CatalogSourceDatabase:
		conn, err := database.NewSQLXOracleDB(cfg.GetDSN())
		if err != nil {
			return nil, err
		}
		*db = conn
		return repository.NewCatalogDatabaseAdapter(conn), nil
	default:
		return nil, fmt.Errorf("unsupported catalog source: %q", cfg.Catalog.Source)
	}
}
