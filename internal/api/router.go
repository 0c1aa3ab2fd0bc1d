package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/OpeyemiAdeniji/fatouapi/internal/api/handler"
	"github.com/OpeyemiAdeniji/fatouapi/internal/api/middleware"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/service"
	"github.com/OpeyemiAdeniji/fatouapi/internal/infrastructure/config"
	mongodb "github.com/OpeyemiAdeniji/fatouapi/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, queue ports.NotificationQueue, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authz := service.NewAuthorizer(roleRepo)
	identity := service.NewIdentityService(userRepo, roleRepo, tokens, queue, log)

	authHandler := handler.NewAuthHandler(identity)
	userHandler := handler.NewUserHandler(userRepo)
	authenticate := middleware.Authenticate(tokens, userRepo)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/waitlist", authHandler.Waitlist)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/auth/me", userHandler.Me, authenticate,
		middleware.RequireRole(authz, domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin))

	// --- Admin routes ---
	e.GET("/v1/users", userHandler.List, authenticate,
		middleware.RequireRole(authz, domain.RoleAdmin, domain.RoleSuperAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
