package main

import (
	"log"
	"os"

	"github.com/chatchaiw/apparel-api/internal/application/service"
	"github.com/chatchaiw/apparel-api/internal/config"
	"github.com/chatchaiw/apparel-api/internal/domain/pricing"
	"github.com/chatchaiw/apparel-api/internal/infrastructure/database"
	"github.com/chatchaiw/apparel-api/internal/infrastructure/repository"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/handler"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/routes"
	"github.com/chatchaiw/apparel-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	priceBook := pricing.DefaultPriceBook()
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	orderService := service.NewOrderService(orderRepo, auditRepo, customerService, catalogService, priceBook)
	quoteService := service.NewQuoteService(catalogService, priceBook)
	publicService := service.NewPublicOrderService(orderRepo, auditRepo, cfg.Storage)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Order:    handler.NewOrderHandler(orderService, cfg.Pricing),
		Customer: handler.NewCustomerHandler(customerService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Quote:    handler.NewQuoteHandler(quoteService, cfg.Pricing),
		Public:   handler.NewPublicHandler(publicService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s (%s)", cfg.App.Name, port, cfg.App.Env)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
