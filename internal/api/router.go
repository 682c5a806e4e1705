package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/storemgmt/store-api/docs"
	"github.com/storemgmt/store-api/internal/api/handler"
	"github.com/storemgmt/store-api/internal/api/middleware"
	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/service"
	"github.com/storemgmt/store-api/internal/infrastructure/config"
	storemongo "github.com/storemgmt/store-api/internal/infrastructure/db/mongo"
	"github.com/storemgmt/store-api/internal/infrastructure/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	restock service.RestockEnqueuer,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	userRepo := storemongo.NewUserRepository(db)
	productRepo := storemongo.NewProductRepository(db)

	hasher := security.NewBcryptHasher(0)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	verifier := service.NewCredentialVerifier(userRepo, hasher)
	authService := service.NewAuthService(userRepo, hasher, verifier, tokens, log)
	inventoryService := service.NewInventoryService(productRepo, restock, cfg.LowStockThreshold, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(inventoryService)
	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/authenticate", authHandler.Authenticate)

	// --- Catalog routes ---
	products := e.Group("/api/v1/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Add,
		authMiddleware, middleware.RBAC(domain.RoleUser, domain.RoleAdmin))
	products.PATCH("/:id/price", productHandler.UpdatePrice,
		authMiddleware, middleware.RBAC(domain.RoleAdmin))
	products.PATCH("/:id/purchase", productHandler.Purchase,
		authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
