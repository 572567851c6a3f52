package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickalba/job-board-system/internal/api/handler"
	"github.com/quickalba/job-board-system/internal/api/middleware"
	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/ports"
	"github.com/quickalba/job-board-system/internal/core/service"
	mongostore "github.com/quickalba/job-board-system/internal/infrastructure/db/mongo"
	redisstore "github.com/quickalba/job-board-system/internal/infrastructure/db/redis"
)

// Config carries the router's tunables.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	dispatcher handler.ApplicationDispatcher,
	catalog ports.Catalog,
	log zerolog.Logger,
	cfg Config,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	sessions := redisstore.NewSessionStore(rdb)
	authRepo := mongostore.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, sessions, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	jobRepo := mongostore.NewJobRepository(db)
	searchService := service.NewSearchService(jobRepo, redisstore.NewSearchCache(rdb), log)
	jobHandler := handler.NewJobHandler(searchService, dispatcher)

	catalogHandler := handler.NewCatalogHandler(service.NewCatalogService(catalog))

	auth := middleware.Auth(cfg.JWTSecret, sessions)
	jobseekerOnly := middleware.RequireRole(domain.RoleJobseeker)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Job routes ---
	e.GET("/v1/jobs", jobHandler.List)
	e.GET("/v1/jobs/:id", jobHandler.Get)
	e.POST("/v1/jobs/:id/apply", jobHandler.Apply, auth, jobseekerOnly)
	e.GET("/v1/catalog", catalogHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
