package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/nursery-store/auth"
	"github.com/junaidrashid-git/nursery-store/cart"
	"github.com/junaidrashid-git/nursery-store/catalog"
	"github.com/junaidrashid-git/nursery-store/config"
	orderControllers "github.com/junaidrashid-git/nursery-store/controllers/order"
	"github.com/junaidrashid-git/nursery-store/logging"
	"github.com/junaidrashid-git/nursery-store/middleware"
	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/notify"
	"github.com/junaidrashid-git/nursery-store/orders"
	"github.com/junaidrashid-git/nursery-store/payment"
	"github.com/junaidrashid-git/nursery-store/pricing"
	"github.com/junaidrashid-git/nursery-store/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Production())
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("✅ Starting application...", zap.String("env", cfg.Env))

	// Init DB
	db := initDatabase(cfg, logger)

	rates, err := config.LoadRates(cfg.PricingFile)
	if err != nil {
		logger.Fatal("❌ Failed to load pricing table", zap.String("file", cfg.PricingFile), zap.Error(err))
	}
	calc := pricing.NewCalculator(rates, pricing.WithLogger(logger))

	gateway := initGateway(cfg, logger)
	notifier := notify.NewNotifier(initMailer(cfg, logger), cfg.EmailFrom, cfg.AdminEmail, cfg.StoreName)

	products := catalog.NewGormRepository(db)
	carts := cart.NewGormPersister(db)
	orderRepo := orders.NewGormRepository(db)
	hub := orderControllers.NewHub(logger)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Workbook uploads
	r.MaxMultipartMemory = 32 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: !allowsAll(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Config:   cfg,
		Sessions: auth.NewSessions(cfg.JWTSecret, cfg.SessionTTL),
		Products: products,
		Carts:    carts,
		Calc:     calc,
		Gateway:  gateway,
		Recorder: orders.NewRecorder(orderRepo, gateway, notifier, carts, hub, logger),
		Orders:   orders.NewAdmin(orderRepo, notifier, logger),
		Notifier: notifier,
		Hub:      hub,
		Logger:   logger,
	})

	// Start server
	logger.Info("🚀 Server running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection and migrates the tables.
func initDatabase(cfg config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("❌ DB connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(models.Tables()...); err != nil {
		logger.Fatal("❌ AutoMigrate failed", zap.Error(err))
	}
	return db
}

// initGateway uses Stripe when a key is configured. Without one every
// checkout is treated as paid, which is only useful locally.
func initGateway(cfg config.Config, logger *zap.Logger) payment.Gateway {
	if cfg.StripeSecretKey != "" {
		return payment.NewStripeGateway(cfg.StripeSecretKey, cfg.ShippingCountries...)
	}
	logger.Warn("⚠️ STRIPE_SECRET_KEY not set, using in-memory payments")
	return payment.NewMemoryGateway(cfg.PublicBaseURL)
}

func initMailer(cfg config.Config, logger *zap.Logger) notify.Mailer {
	if cfg.ResendAPIKey != "" {
		return notify.NewResendMailer(cfg.ResendAPIKey)
	}
	logger.Warn("⚠️ RESEND_API_KEY not set, emails are only logged")
	return notify.LogMailer{Logger: logger}
}

func allowsAll(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
