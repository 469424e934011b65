package app

import (
	"database/sql"

	"hris-audit/internal/config"
	"hris-audit/internal/employee"
	"hris-audit/internal/messaging/kafka"
	"hris-audit/internal/middleware"
	"hris-audit/internal/rbac"
	"hris-audit/internal/rbac/infra"
	"hris-audit/internal/salaryaudit"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services are shared by the HTTP API and hrctl.
type Services struct {
	Employee employee.Service
	Audit    salaryaudit.Service
}

func BuildServices(
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) *Services {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	auditRepo := salaryaudit.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewServiceWithEvents(
		db,
		employeeRepo,
		auditRepo,
		employee.NewOutboxEventPublisher(outboxRepo),
		rdb,
		cfg.CacheTTL,
		logger,
	)
	auditService := salaryaudit.NewService(auditRepo, logger)

	return &Services{
		Employee: employeeService,
		Audit:    auditService,
	}
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	services *Services,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(services.Employee, logger)
	auditHandler := salaryaudit.NewHandler(services.Audit, logger)

	// --- Routes Registration ---
	secret := cfg.JWTSecret.Value()
	idempotency := middleware.Idempotency(rdb, cfg.CacheTTL, logger)
	api := router.Group("/api/v1", middleware.RateLimitByIP(20, 40))
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService, secret, idempotency)
		salaryaudit.RegisterRoutes(api, auditHandler, rbacService, secret)
	}

	return nil
}
