package app

import (
	"context"
	"database/sql"
	"net/http"

	"leaveflow/internal/auth"
	"leaveflow/internal/balance"
	"leaveflow/internal/config"
	"leaveflow/internal/leave"
	"leaveflow/internal/middleware"
	"leaveflow/internal/rbac"
	"leaveflow/internal/rbac/infra"
	"leaveflow/internal/report"
	"leaveflow/internal/shared/response"
	"leaveflow/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Modules holds the services the API and the seed runner share.
type Modules struct {
	Users   user.Service
	Ledger  balance.Ledger
	Leaves  leave.Service
	Reports report.Service
	Auth    auth.Service
	RBAC    rbac.Service
}

func buildModules(cfg config.Config, db *sql.DB, gormDB *gorm.DB, logger *zap.Logger) (*Modules, error) {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	balanceRepo := balance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository()

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return nil, err
	}

	// --- Services ---
	ledger := balance.NewLedger(balanceRepo, logger)
	initializer := func(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error {
		return ledger.WithTx(tx).InitializeBalances(ctx, userID)
	}
	userService := user.NewService(db, userRepo, initializer, logger)
	authService := auth.NewService(userRepo, userService, auth.Config{
		JWTSecret:        cfg.JWTSecret,
		TokenTTL:         cfg.JWTTTL,
		AllowAdminSignup: cfg.AllowAdminSignup,
	}, logger)

	return &Modules{
		Users:   userService,
		Ledger:  ledger,
		Leaves:  leave.NewService(db, leaveRepo, ledger, logger),
		Reports: report.NewService(reportRepo, ledger, logger),
		Auth:    authService,
		RBAC:    rbacService,
	}, nil
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	m *Modules,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// --- Handlers ---
	authHandler := auth.NewHandler(m.Auth, cfg.IsProduction(), logger)
	balanceHandler := balance.NewHandler(balance.NewService(db, m.Ledger, logger), logger)
	leaveHandler := leave.NewHandler(m.Leaves, logger)
	reportHandler := report.NewHandler(m.Reports, logger)
	rbacHandler := rbac.NewHandler(m.RBAC, logger)

	authChain := middleware.AuthMiddleware(cfg.JWTSecret)

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authChain)
		balance.RegisterRoutes(api, balanceHandler, m.RBAC, authChain)
		leave.RegisterRoutes(api, leaveHandler, m.RBAC, rdb, authChain)
		report.RegisterRoutes(api, reportHandler, m.RBAC, authChain)
		rbac.RegisterRoutes(api, rbacHandler, authChain)
	}
}
