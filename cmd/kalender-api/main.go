package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/kalender-api/api/swagger"
	"github.com/noah-isme/kalender-api/internal/calendar"
	"github.com/noah-isme/kalender-api/internal/converter"
	"github.com/noah-isme/kalender-api/internal/handler"
	internalmiddleware "github.com/noah-isme/kalender-api/internal/middleware"
	"github.com/noah-isme/kalender-api/internal/models"
	"github.com/noah-isme/kalender-api/internal/repository"
	"github.com/noah-isme/kalender-api/internal/service"
	"github.com/noah-isme/kalender-api/pkg/cache"
	"github.com/noah-isme/kalender-api/pkg/config"
	"github.com/noah-isme/kalender-api/pkg/database"
	"github.com/noah-isme/kalender-api/pkg/export"
	"github.com/noah-isme/kalender-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/kalender-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/kalender-api/pkg/middleware/requestid"
)

// @title Kalender API
// @version 1.0.0
// @description Gregorian months annotated with Hijri, Javanese and Chinese lunar dates plus Indonesian public holidays.
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var db *sqlx.DB
	if models.HolidaySource(cfg.Holidays.Source) == models.HolidaySourceDatabase {
		db, err = database.New(cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect database", zap.Error(err))
		}
		defer db.Close()
	}

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, rate limiting per process", zap.Error(err))
			redisClient = nil
		}
		if redisClient != nil {
			defer redisClient.Close()
		}
	}

	r, err := newRouter(context.Background(), cfg, logr, db, redisClient)
	if err != nil {
		logr.Fatal("failed to build router", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newRouter wires every dependency and registers the routes. db and
// redisClient may be nil.
func newRouter(ctx context.Context, cfg *config.Config, logr *zap.Logger, db *sqlx.DB, redisClient *redis.Client) (*gin.Engine, error) {
	var metricsSvc *service.MetricsService
	if cfg.Features.Metrics {
		metricsSvc = service.NewMetricsService()
	}

	hijri, err := converter.NewHijri(converter.HijriOptions{
		Method:             cfg.Calendar.HijriMethod,
		ArithmeticFallback: cfg.Calendar.HijriArithmeticFallback,
	})
	if err != nil {
		return nil, err
	}
	lunar := converter.NewLunar()

	source := models.HolidaySource(cfg.Holidays.Source)
	var store interface {
		ListFixed(ctx context.Context) ([]models.FixedHolidayRow, error)
	}
	switch source {
	case models.HolidaySourceFile:
		store = repository.NewHolidayFileRepository(cfg.Holidays.File)
	case models.HolidaySourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("holiday source %q requires a database", source)
		}
		store = repository.NewHolidayRepository(db)
	}
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	table, err := service.NewHolidayService(source, store, metricsSvc, logr).LoadTable(loadCtx)
	if err != nil {
		return nil, err
	}
	engine := calendar.NewHolidayEngine(table)

	kalenderSvc := service.NewKalenderService(hijri, lunar, engine, validator.New(), metricsSvc, logr, cfg.Calendar.DefaultLanguage)
	var exporter handler.ExportService
	if cfg.Features.Export {
		exporter = service.NewExportService(kalenderSvc, export.NewCSVExporter(), export.NewPDFExporter(), logr)
	}

	negotiator := handler.NewLanguageNegotiator(cfg.Calendar.DefaultLanguage, cfg.Calendar.SupportedLanguages)
	kalenderHandler := handler.NewKalenderHandler(kalenderSvc, exporter, negotiator)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, table)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	if metricsSvc != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		swagger.SwaggerInfo.BasePath = basePath(cfg.APIPrefix)
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.RateLimit.Enabled {
		var limitStore internalmiddleware.RateLimitStore
		if redisClient != nil {
			limitStore = repository.NewRedisRateLimitRepository(redisClient)
		} else {
			limitStore = repository.NewMemoryRateLimitRepository()
		}
		api.Use(internalmiddleware.NewRateLimit(limitStore, cfg.RateLimit.Requests, cfg.RateLimit.Window, nil, metricsSvc, logr).Handle())
	}
	api.GET("/", kalenderHandler.Index)
	api.GET("/kalender/:year/:month", kalenderHandler.Month)
	if exporter != nil {
		api.GET("/kalender/:year/:month/export", kalenderHandler.Export)
	}

	return r, nil
}

func basePath(prefix string) string {
	if prefix == "" {
		return "/"
	}
	return prefix
}
