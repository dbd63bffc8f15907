package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pollhub/polling-api/internal/api/handler"
	"github.com/pollhub/polling-api/internal/api/middleware"
	"github.com/pollhub/polling-api/internal/core/domain"
	"github.com/pollhub/polling-api/internal/core/service"
	mongodb "github.com/pollhub/polling-api/internal/infrastructure/db/mongo"
	httphandlers "github.com/pollhub/polling-api/internal/infrastructure/http/handlers"
	"github.com/pollhub/polling-api/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The signing secret reaches the token issuer here and nowhere else.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("pollhub"))

	// --- Dependencies ---
	issuer := token.NewIssuer(jwtSecret, 0)
	userRepo := mongodb.NewUserRepository(db)
	pollRepo := mongodb.NewPollRepository(db)

	authService := service.NewAuthService(userRepo, issuer, log)
	pollService := service.NewPollService(pollRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	pollHandler := handler.NewPollHandler(pollService)

	guard := middleware.Auth(issuer, userRepo)
	moderators := middleware.RBAC(domain.RoleModerator, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, guard)
	e.POST("/auth/logout", authHandler.Logout, guard)

	// --- Poll routes ---
	e.GET("/polls", pollHandler.List)
	e.POST("/polls", pollHandler.Create, guard)
	e.POST("/polls/:id/vote", pollHandler.Vote)
	e.DELETE("/polls/:id", pollHandler.Delete, guard, moderators)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
