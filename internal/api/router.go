package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/sweet-shop-api/internal/api/handler"
	"github.com/sweetshop/sweet-shop-api/internal/api/middleware"
	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/service"
	"github.com/sweetshop/sweet-shop-api/internal/infrastructure/config"
	mongodb "github.com/sweetshop/sweet-shop-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetshop/sweet-shop-api/internal/infrastructure/db/redis"
	"github.com/sweetshop/sweet-shop-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case login throttling is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	sweetRepo := mongodb.NewSweetRepository(db)
	ensureIndexes(authRepo, sweetRepo, log)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, log)
	authService := service.NewAuthService(authRepo, tokenService)
	sweetService := service.NewSweetService(sweetRepo, log)

	var throttle handler.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginLimiter(rdb)
	}

	authHandler := handler.NewAuthHandler(authService, throttle, log)
	sweetHandler := handler.NewSweetHandler(sweetService)

	authenticated := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Sweet routes ---
	sweets := e.Group("/api/sweets")
	sweets.GET("", sweetHandler.List)
	sweets.GET("/search", sweetHandler.Search)
	sweets.POST("", sweetHandler.Create, authenticated)
	sweets.PUT("/:id", sweetHandler.Update, authenticated)
	sweets.DELETE("/:id", sweetHandler.Delete, authenticated, adminOnly)
	sweets.POST("/:id/purchase", sweetHandler.Purchase, authenticated)
	sweets.POST("/:id/restock", sweetHandler.Restock, authenticated, adminOnly)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}

func ensureIndexes(authRepo *mongodb.AuthRepository, sweetRepo *mongodb.SweetRepository, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}
	if err := sweetRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure sweet indexes")
	}
}
