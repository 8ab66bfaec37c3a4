package app

import (
	"fmt"
	"time"

	"leaveflow/internal/bootstrap"
	"leaveflow/internal/config"
	"leaveflow/internal/middleware"
	"leaveflow/internal/shared/apperror"
	"leaveflow/internal/shared/connection"
	"leaveflow/internal/shared/database"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenDatabase connects to the configured driver. The schema is migrated on
// every start.
func OpenDatabase(cfg config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err = connection.OpenSQLite(cfg.Database.Path)
	default:
		db, err = connection.ConnectGORMWithRetry(
			cfg.Database.Host,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.Port,
			cfg.Database.SSLMode,
			cfg.Database.MaxRetries,
		)
	}
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// NewRouter builds the gin engine with every module registered. rdb may be
// nil, in which case idempotency keys are ignored.
func NewRouter(cfg config.Config, gormDB *gorm.DB, rdb *redis.Client, logger *zap.Logger) (*gin.Engine, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	modules, err := buildModules(cfg, sqlDB, gormDB, logger)
	if err != nil {
		return nil, err
	}

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
	)

	registerModules(r, cfg, sqlDB, modules, rdb, logger)
	return r, nil
}

func RunAPI(cfg config.Config) error {
	logger := zap.L().Named("app.api")

	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	logger.Info("database ready", zap.String("driver", cfg.Database.Driver))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.Database.MaxRetries)
		if err != nil {
			return err
		}
		defer rdb.Close()
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency keys disabled")
	}

	router, err := NewRouter(cfg, gormDB, rdb, zap.L())
	if err != nil {
		return err
	}

	return bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:           cfg.Port,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
}
