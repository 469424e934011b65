package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"hris-audit/internal/config"
	"hris-audit/internal/db"
	"hris-audit/internal/db/migrations"
	"hris-audit/internal/middleware"
	"hris-audit/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the opened connections. Close releases them in reverse order.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

// OpenInfra connects to Postgres, applies pending migrations and, when
// REDIS_ADDR is set, connects the cache.
func OpenInfra(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	infra := &Infra{GormDB: gormDB, SQLDB: sqlDB}

	if err := db.RunMigrations(ctx, sqlDB, migrations.FS, logger); err != nil {
		infra.Close()
		return nil, err
	}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.Database.MaxRetries, logger)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = rdb
	} else {
		logger.Warn("REDIS_ADDR not set, department cache disabled")
	}

	return infra, nil
}

func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	// 1. Setup Infrastructure
	infra, err := OpenInfra(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	router.Use(
		middleware.ContextLogger(logger),
		middleware.PrometheusMiddleware(),
	)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthHandler(infra.SQLDB))

	// 2. Register Modules & Routes
	services := BuildServices(cfg, infra.SQLDB, infra.GormDB, infra.Redis, logger)
	if err := registerModules(router, cfg, services, infra.Redis, logger); err != nil {
		infra.Close()
		return nil, err
	}

	return infra, nil
}

func healthHandler(sqlDB *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := sqlDB.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
