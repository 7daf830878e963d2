package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hygienicomfort/shop_api/internal/cache"
	"github.com/hygienicomfort/shop_api/internal/config"
	"github.com/hygienicomfort/shop_api/internal/database"
	"github.com/hygienicomfort/shop_api/internal/handler"
	"github.com/hygienicomfort/shop_api/internal/invoice"
	"github.com/hygienicomfort/shop_api/internal/middleware"
	"github.com/hygienicomfort/shop_api/internal/repository"
	"github.com/hygienicomfort/shop_api/internal/service"
	"github.com/hygienicomfort/shop_api/internal/sse"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

// main is the application entrypoint for the shop admin API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting shop api")

	utils.InitJWT(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize caches
	catalogCache := cache.NewCatalogCache(redisClient, cfg.Cache.CatalogTTL)
	prefCache := cache.NewPreferenceCache(redisClient)

	// 4. Initialize SSE hub
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)

	// 5. Initialize repositories
	staffRepo := repository.NewStaffUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	invLogRepo := repository.NewInventoryLogRepository(db)

	// 6. Initialize services
	authSvc := service.NewAuthService(staffRepo, redisClient, cfg.Cache.ResetTokenTTL)
	productSvc := service.NewProductService(productRepo, catalogCache)
	orderSvc := service.NewOrderService(orderRepo, customerRepo, notifier, cfg.Shop.Name)
	customerSvc := service.NewCustomerService(customerRepo, orderRepo)
	inventorySvc := service.NewInventoryService(invLogRepo, productRepo)
	dashboardSvc := service.NewDashboardService(productRepo, orderRepo)

	renderer, err := invoice.NewRenderer(invoice.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		Phone:   cfg.Shop.Phone,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invoice template parse failed")
	}

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()
	loginLimiter := middleware.NewInvalidAuthRateLimiter()

	// 8. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db, redisClient),
		Auth:      handler.NewAuthHandler(authSvc, loginLimiter, cfg.AppBaseURL),
		Product:   handler.NewProductHandler(productSvc),
		Order:     handler.NewOrderHandler(orderSvc),
		Customer:  handler.NewCustomerHandler(customerSvc, renderer),
		Inventory: handler.NewInventoryHandler(inventorySvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Settings:  handler.NewSettingsHandler(prefCache),
		Invoice:   handler.NewInvoiceHandler(orderSvc, renderer),
		SSE:       handler.NewSSEHandler(hub),
	}

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Customer  *handler.CustomerHandler
	Inventory *handler.InventoryHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	Invoice   *handler.InvoiceHandler
	SSE       *handler.SSEHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Auth routes (public)
	auth := router.Group("/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/forgot-password", handlers.Auth.ForgotPassword)
		auth.POST("/reset-password", handlers.Auth.ResetPassword)
	}

	// SSE stream (token via query param)
	router.GET("/v1/events", handlers.SSE.Stream)

	// Protected routes
	api := router.Group("/v1")
	api.Use(jwtMiddleware.Handle())
	{
		// Profile
		api.GET("/profile", handlers.Auth.GetProfile)
		api.PUT("/profile", handlers.Auth.UpdateProfile)
		api.POST("/profile/change-password", handlers.Auth.ChangePassword)

		// Settings
		api.GET("/settings/preferences", handlers.Settings.GetPreferences)
		api.PUT("/settings/preferences", handlers.Settings.UpdatePreferences)

		// Dashboard
		api.GET("/dashboard", handlers.Dashboard.Stats)

		// Products
		api.GET("/products", handlers.Product.List)
		api.GET("/products/categories", handlers.Product.Categories)
		api.GET("/products/low-stock", handlers.Product.LowStock)
		api.GET("/products/:id", handlers.Product.Get)
		api.POST("/products", jwtMiddleware.RequireAdmin(), handlers.Product.Create)
		api.PUT("/products/:id", jwtMiddleware.RequireAdmin(), handlers.Product.Update)
		api.POST("/products/:id/clone", jwtMiddleware.RequireAdmin(), handlers.Product.Clone)
		api.DELETE("/products/:id", jwtMiddleware.RequireAdmin(), handlers.Product.Delete)

		// Orders
		api.GET("/orders", handlers.Order.List)
		api.GET("/orders/customer-suggestions", handlers.Order.SuggestCustomers)
		api.GET("/orders/:id", handlers.Order.Get)
		api.GET("/orders/:id/invoice", handlers.Invoice.Invoice)
		api.POST("/orders", handlers.Order.Create)
		api.PUT("/orders/:id", handlers.Order.Update)
		api.POST("/orders/:id/approve", handlers.Order.Approve)
		api.POST("/orders/:id/cancel", handlers.Order.Cancel)
		api.PATCH("/orders/:id/status", handlers.Order.UpdateStatus)
		api.DELETE("/orders/:id", jwtMiddleware.RequireAdmin(), handlers.Order.Delete)

		// Customers
		api.GET("/customers", handlers.Customer.List)
		api.GET("/customers/:id/profile", handlers.Customer.Profile)
		api.GET("/customers/:id/statement", handlers.Customer.Statement)
		api.POST("/customers", handlers.Customer.Create)
		api.PUT("/customers/:id", handlers.Customer.Update)
		api.DELETE("/customers/:id", handlers.Customer.Delete)

		// Inventory
		api.POST("/inventory/movements", handlers.Inventory.Move)
		api.GET("/inventory/movements", handlers.Inventory.Recent)
		api.GET("/inventory/products/:id/history", handlers.Inventory.History)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
