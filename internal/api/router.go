package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roleportal/accounts-api/internal/api/handler"
	"github.com/roleportal/accounts-api/internal/api/middleware"
	"github.com/roleportal/accounts-api/internal/core/service"
	mongostore "github.com/roleportal/accounts-api/internal/infrastructure/db/mongo"
	redisstore "github.com/roleportal/accounts-api/internal/infrastructure/db/redis"
	"github.com/roleportal/accounts-api/internal/infrastructure/queue"
	"github.com/roleportal/accounts-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered, plus the
// audit dispatcher the caller must Start.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo, err := mongostore.NewUserRepository(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	auditRepo := mongostore.NewAuditRepository(db)
	revocations := redisstore.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revocations, cfg.JWTSecret, cfg.JWTTTL)
	accountService := service.NewAccountService(userRepo, log)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)

	authHandler := handler.NewAuthHandler(authService, dispatcher)
	dashboardHandler := handler.NewDashboardHandler(accountService, auditService)
	userHandler := handler.NewUserHandler(accountService, dispatcher)

	requireAuth := middleware.Auth(cfg.JWTSecret, revocations)
	optionalAuth := middleware.AuthOptional(cfg.JWTSecret, revocations)

	// --- Login entry point ---
	e.GET("/", authHandler.Root, optionalAuth)
	e.POST("/", authHandler.Login)

	// --- Signup ---
	e.GET("/signup/", authHandler.SignupForm)
	e.POST("/signup/", authHandler.Signup)

	// --- Logout ---
	e.POST("/logout/", authHandler.Logout, requireAuth)

	// --- Dashboards ---
	e.GET("/dashboard/customer/", dashboardHandler.Customer, requireAuth, middleware.RequireCustomer("customer_dashboard", dispatcher))
	e.GET("/dashboard/admin/", dashboardHandler.Admin, requireAuth, middleware.RequireAdmin("admin_dashboard", dispatcher))
	e.GET("/dashboard/admin/audit/", dashboardHandler.AuditTrail, requireAuth, middleware.RequireAdmin("admin_audit", dispatcher))

	// --- Account mutations (admin only) ---
	e.POST("/user/delete/:id/", userHandler.Delete, requireAuth, middleware.RequireAdmin("delete_user", dispatcher))
	e.GET("/user/delete/:id/", userHandler.DeleteFallthrough, requireAuth, middleware.RequireAdmin("delete_user", dispatcher))
	e.POST("/user/update/:id/", userHandler.Update, requireAuth, middleware.RequireAdmin("update_user", dispatcher))
	e.GET("/user/update/:id/", userHandler.UpdateForm, requireAuth, middleware.RequireAdmin("update_user", dispatcher))

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, dispatcher, nil
}
