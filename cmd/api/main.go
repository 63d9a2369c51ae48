package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-pos-kasir/internal/handler"
	"go-pos-kasir/internal/middleware"
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/internal/service"
	"go-pos-kasir/internal/ws"
	"go-pos-kasir/pkg/database"
	"go-pos-kasir/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	envErr := godotenv.Load()
	log := logger.New("go-pos-kasir")
	if envErr != nil {
		log.Warn().Msg(".env file not found")
	}

	// 2. Setup Database
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Sale{},
		&model.SaleLine{},
		&model.Purchase{},
		&model.PurchaseLine{},
		&model.StockLedgerEntry{},
		&model.Debt{},
		&model.DebtPayment{},
		&model.CashEntry{},
		&model.User{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migration failed")
	}

	// 3. Seed default admin user
	seedAdmin(db, log)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	ledgerRepo := repository.NewLedgerRepo(db)
	debtRepo := repository.NewDebtRepo(db)
	cashRepo := repository.NewCashRepo(db)
	userRepo := repository.NewUserRepo(db)

	stockLedger := service.NewStockLedger(productRepo)
	saleService := service.NewSaleService(db, saleRepo, stockLedger, wsHub, log)
	purchaseService := service.NewPurchaseService(db, purchaseRepo, stockLedger, wsHub, log)
	debtService := service.NewDebtService(db, debtRepo, log)
	productService := service.NewProductService(productRepo, wsHub)
	reportService := service.NewReportService(saleRepo, purchaseRepo, productRepo, customerRepo, cashRepo, ledgerRepo)
	dashService := service.NewDashboardService(productRepo, debtRepo, ledgerRepo)
	exportService := service.NewExportService(productRepo, customerRepo, supplierRepo, saleRepo, purchaseRepo, debtRepo, cashRepo, ledgerRepo, reportService)
	authService := service.NewAuthService(userRepo)

	saleHandler := handler.NewSaleHandler(saleService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	debtHandler := handler.NewDebtHandler(debtService)
	productHandler := handler.NewProductHandler(productService)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	supplierHandler := handler.NewSupplierHandler(supplierRepo)
	cashFlowHandler := handler.NewCashFlowHandler(cashRepo)
	reportHandler := handler.NewReportHandler(reportService)
	dashHandler := handler.NewDashboardHandler(dashService)
	exportHandler := handler.NewExportHandler(exportService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Kasir v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// Produk
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Pelanggan & Supplier
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Post("/customers", customerHandler.CreateCustomer)
	protected.Put("/customers/:id", customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", customerHandler.DeleteCustomer)

	protected.Get("/suppliers", supplierHandler.GetSuppliers)
	protected.Get("/suppliers/:id", supplierHandler.GetSupplier)
	protected.Post("/suppliers", supplierHandler.CreateSupplier)
	protected.Put("/suppliers/:id", supplierHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	// Penjualan
	protected.Get("/sales", saleHandler.GetSales)
	protected.Get("/sales/:id", saleHandler.GetSale)
	protected.Post("/sales", saleHandler.CreateSale)

	// Pembelian
	protected.Get("/purchases", purchaseHandler.GetPurchases)
	protected.Get("/purchases/:id", purchaseHandler.GetPurchase)
	protected.Post("/purchases", purchaseHandler.CreatePurchase)

	// Hutang
	protected.Get("/debts", debtHandler.GetDebts)
	protected.Get("/debts/:id", debtHandler.GetDebt)
	protected.Post("/debts/:id/payments", debtHandler.PayDebt)

	// Arus kas
	protected.Get("/cashflow", cashFlowHandler.GetEntries)
	protected.Post("/cashflow", cashFlowHandler.CreateEntry)
	protected.Delete("/cashflow/:id", cashFlowHandler.DeleteEntry)

	// Laporan
	protected.Get("/reports/profit", reportHandler.GetProfitReport)
	protected.Get("/reports/stock-ledger", reportHandler.GetStockLedger)
	protected.Get("/reports/customers", reportHandler.GetCustomerSummary)

	// Backup
	protected.Get("/backup", exportHandler.BackupJSON)
	protected.Get("/backup/excel", exportHandler.BackupExcel)

	// WebSocket Route
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

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		log.Info().Str("port", port).Msg("server listening")
		if err := app.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}

// seedAdmin creates the default admin account when the user table is empty.
func seedAdmin(db *gorm.DB, log zerolog.Logger) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Warn().Err(err).Msg("failed to hash admin password")
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Warn().Err(err).Msg("failed to create admin user")
		return
	}
	log.Info().Str("email", admin.Email).Msg("admin user created")
}
