package api

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fusionasiatica/storefront-api/docs"
	"github.com/fusionasiatica/storefront-api/internal/api/handler"
	"github.com/fusionasiatica/storefront-api/internal/api/middleware"
	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/service"
	mongostore "github.com/fusionasiatica/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/fusionasiatica/storefront-api/internal/infrastructure/db/redis"
	"github.com/fusionasiatica/storefront-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all state services initialized and
// all routes registered. The context bounds service initialization and the
// lifetime of the audit dispatcher workers.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	slots := mongostore.NewSlotStore(db)
	dedup := redisstore.NewCheckoutDedup(rdb)
	activityRepo := mongostore.NewActivityRepository(db)

	dispatcher := queue.NewDispatcher(0, activityRepo, log)
	dispatcher.Start(ctx)

	catalogService := service.NewCatalogService(slots, log)
	cartService := service.NewCartService(dedup, log)
	contactService := service.NewContactService(slots, log)
	authService := service.NewAuthService(slots, jwtSecret, 24*time.Hour, log)

	if err := catalogService.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize catalog: %w", err)
	}
	if err := contactService.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize contact log: %w", err)
	}
	if err := authService.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize auth: %w", err)
	}

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService, dispatcher)
	cartHandler := handler.NewCartHandler(cartService, catalogService, dispatcher)
	contactHandler := handler.NewContactHandler(contactService, dispatcher)
	activityHandler := handler.NewActivityHandler(activityRepo)

	// The guard checks only that a session is present; the role allow-list
	// admits every known role, preserving the storefront's observed
	// authentication-only admin access.
	guard := middleware.Auth(jwtSecret)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleUser)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, guard, anyRole)
	e.GET("/auth/me", authHandler.Me, guard, anyRole)

	// --- Catalog ---
	e.GET("/v1/products", catalogHandler.List)
	e.POST("/v1/products", catalogHandler.Create, guard, anyRole)
	e.DELETE("/v1/products/:id", catalogHandler.Delete, guard, anyRole)
	e.PATCH("/v1/products/:id/stock", catalogHandler.UpdateStock, guard, anyRole)

	// --- Cart ---
	e.GET("/v1/cart", cartHandler.Get)
	e.POST("/v1/cart/items", cartHandler.AddItem)
	e.PATCH("/v1/cart/items/:id", cartHandler.UpdateItem)
	e.DELETE("/v1/cart/items/:id", cartHandler.RemoveItem)
	e.DELETE("/v1/cart", cartHandler.Clear)
	e.POST("/v1/cart/checkout", cartHandler.Checkout)

	// --- Contact ---
	e.POST("/v1/contact", contactHandler.Create)
	e.GET("/v1/contact", contactHandler.List, guard, anyRole)
	e.DELETE("/v1/contact/:id", contactHandler.Delete, guard, anyRole)

	// --- Admin ---
	e.GET("/v1/admin/activity", activityHandler.List, guard, anyRole)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
