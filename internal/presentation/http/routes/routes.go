package routes

import (
	"time"

	"github.com/chatchaiw/apparel-api/internal/config"
	domainRepo "github.com/chatchaiw/apparel-api/internal/domain/repository"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/handler"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/middleware"
	"github.com/chatchaiw/apparel-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Order    *handler.OrderHandler
	Customer *handler.CustomerHandler
	Catalog  *handler.CatalogHandler
	Quote    *handler.QuoteHandler
	Public   *handler.PublicHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	// Customer-facing order page, reached through the public order UUID
	public := v1.Group("/public")
	{
		public.GET("/orders/:uuid", h.Public.GetOrder)
		public.POST("/orders/:uuid/slip", h.Public.UploadSlip)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)

	// Pricing calculator (no persistence)
	protected.POST("/pricing/calc", h.Quote.Calculate)

	// Orders; writes honor the Idempotency-Key header
	orders := protected.Group("/orders")
	orders.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", middleware.RequireRole("owner", "admin"), h.Order.Delete)
		orders.GET("/:id/audit-logs", h.Order.AuditLogs)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
	}

	// Catalog
	catalog := protected.Group("/catalog")
	{
		catalog.GET("/neck-types", h.Catalog.ListNeckTypes)
		catalog.GET("/fabric-types", h.Catalog.ListFabricTypes)
		catalog.GET("/sleeve-types", h.Catalog.ListSleeveTypes)
	}
}
