package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/SnigdhaDeepgrid/Nkiosk-superapp/docs"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/api/handler"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/api/middleware"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/service"
	mongodb "github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/infrastructure/db/mongo"
	redisdb "github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/infrastructure/db/redis"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("nkiosk"))

	// --- Dependencies ---
	credentials := mongodb.NewCredentialRepository(db)
	revocations := redisdb.NewRevocationList(rdb)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(credentials, hasher, tokens, revocations, log)
	statusService := service.NewStatusService(mongodb.NewStatusRepository(db))
	analyticsService := service.NewAnalyticsService()

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler()
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	statusHandler := handler.NewStatusHandler(statusService)

	authGuard := middleware.Auth(tokens, credentials, revocations, log)
	loginThrottle := middleware.LoginRateLimit(cfg.LoginRate, cfg.LoginBurst)

	// --- API routes ---
	apiGroup := e.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.POST("/login", authHandler.Login, loginThrottle)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/profile", authHandler.Profile, authGuard)

	apiGroup.GET("/dashboard/:slug", dashboardHandler.View, authGuard)

	analytics := apiGroup.Group("/analytics", authGuard, middleware.RBAC(domain.RoleSaasAdmin))
	analytics.GET("/revenue", analyticsHandler.Revenue)
	analytics.GET("/user-behavior", analyticsHandler.UserBehavior)
	analytics.GET("/performance", analyticsHandler.Performance)
	analytics.GET("/summary", analyticsHandler.Summary)
	analytics.GET("/tenant-performance", analyticsHandler.TenantPerformance)
	analytics.GET("/geographic", analyticsHandler.Geographic)

	status := apiGroup.Group("/status", authGuard, middleware.RBAC(domain.RoleSupportStaff, domain.RoleSaasAdmin))
	status.POST("", statusHandler.Create)
	status.GET("", statusHandler.List)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
