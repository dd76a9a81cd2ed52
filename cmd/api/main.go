package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-components-inventory/internal/config"
	"go-components-inventory/internal/handler"
	"go-components-inventory/internal/middleware"
	"go-components-inventory/internal/model"
	"go-components-inventory/internal/repository"
	"go-components-inventory/internal/service"
	"go-components-inventory/internal/ws"
	"go-components-inventory/pkg/database"
	applog "go-components-inventory/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	log := applog.Must(applog.New())
	defer log.Sync()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// 2. Setup database
	db := database.ConnectDB(cfg.Database)
	db.AutoMigrate(&model.Product{}, &model.Purchase{}, &model.PurchaseItem{},
		&model.Sale{}, &model.SaleItem{}, &model.User{})

	// 3. Seed default admin user
	seedAdmin(db, cfg, log)

	// 4. Setup WebSocket hub
	wsHub := ws.NewHub(applog.Named(log, "ws"))
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo, db, wsHub)
	purchaseService := service.NewPurchaseService(productRepo, purchaseRepo, db, wsHub)
	saleService := service.NewSaleService(productRepo, saleRepo, db, wsHub)
	dashService := service.NewDashboardService(productRepo, purchaseRepo, saleRepo)
	reportService := service.NewReportService(productRepo, purchaseRepo, saleRepo)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(catalogService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	saleHandler := handler.NewSaleHandler(saleService)
	dashHandler := handler.NewDashboardHandler(dashService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Components Inventory v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// Auth routes (no authentication required)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Catalog
	protected.Get("/products", productHandler.GetProducts)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Purchases (immutable once recorded: no update or delete routes)
	protected.Get("/purchases", purchaseHandler.GetPurchases)
	protected.Get("/purchases/:id", purchaseHandler.GetPurchase)
	protected.Post("/purchases", purchaseHandler.CreatePurchase)

	// Sales (immutable once recorded)
	protected.Get("/sales", saleHandler.GetSales)
	protected.Get("/sales/:id", saleHandler.GetSale)
	protected.Post("/sales", saleHandler.CreateSale)

	// Catalog categories (fixed list consumed by the UI forms)
	protected.Get("/categories", func(c *fiber.Ctx) error {
		return c.JSON(model.Categories)
	})

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	// CSV reports
	protected.Get("/reports/inventory.csv", reportHandler.ExportInventory)
	protected.Get("/reports/sales.csv", reportHandler.ExportSales)
	protected.Get("/reports/purchases.csv", reportHandler.ExportPurchases)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail(cfg.Auth.AdminEmail); err == nil {
		return
	}

	admin := &model.User{
		Email:    cfg.Auth.AdminEmail,
		FullName: "Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(cfg.Auth.AdminPassword); err != nil {
		log.Warn("failed to hash admin password", zap.Error(err))
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Warn("failed to create admin user", zap.Error(err))
		return
	}

	log.Info("admin user created", zap.String("email", cfg.Auth.AdminEmail))
}
