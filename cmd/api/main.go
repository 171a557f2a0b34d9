package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/pfportal/employer-api/docs" // Swagger docs
	"github.com/pfportal/employer-api/internal/config"
	"github.com/pfportal/employer-api/internal/database"
	"github.com/pfportal/employer-api/internal/handlers"
	"github.com/pfportal/employer-api/internal/jobs"
	"github.com/pfportal/employer-api/internal/middleware"
	"github.com/pfportal/employer-api/internal/repository"
	"github.com/pfportal/employer-api/internal/services"
	"github.com/pfportal/employer-api/internal/storage"
	"github.com/pfportal/employer-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Employer Portal API
// @version 1.0
// @description REST API for the provident fund employer portal: monthly returns, challans and payments

// @contact.name API Support

// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.ResendAPIKey == "" || cfg.FromEmail == "" {
		logger.Warn("Outbound email disabled: RESEND_API_KEY or FROM_EMAIL not set.")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("Database schema up to date")

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, worker, store, cfg)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (public)
	router.GET("/health", h.Health.Index)

	// Authentication (public)
	router.POST("/auth/login", h.Auth.Login)

	// Protected routes (requires authentication)
	protected := router.Group("")
	protected.Use(middleware.Auth(cfg.JWTSecret))
	{
		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/dashboard", h.Dashboard.Index)
		protected.POST("/notifications/mark-read", h.Dashboard.MarkNotificationsRead)

		returns := protected.Group("/returns")
		{
			// Static routes first so "monthly" is not matched as :id
			returns.GET("/monthly", h.Return.Monthly)
			returns.POST("/upload", h.Return.Upload)
			returns.GET("/files", h.Return.Files)
			returns.GET("/:id", h.Return.Show)
			returns.POST("/:id/approve", h.Return.Approve)
			returns.POST("/:id/reject", h.Return.Reject)
			returns.GET("/:id/file", h.Return.File)
			returns.GET("/:id/statement.pdf", h.Return.Statement)
			returns.POST("/:id/full-payment", h.Return.FullPayment)
			returns.POST("/:id/finalize", h.Return.Finalize)
		}

		challans := protected.Group("/challans")
		{
			challans.GET("", h.Challan.Index)
			challans.POST("/validate-bank", h.Challan.ValidateBank)
			challans.GET("/:id", h.Challan.Show)
			challans.POST("/:id/cancel", h.Challan.Cancel)
			challans.POST("/:id/pay", h.Challan.Pay)
			challans.GET("/:id/receipt.pdf", h.Challan.Receipt)
		}

		annexures := protected.Group("/annexures")
		{
			annexures.GET("/members", h.Annexure.Members)
			annexures.GET("/members/export", h.Annexure.ExportMembers)
			annexures.GET("/banks", h.Annexure.Banks)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Purge expired full-payment contexts every hour
	worker.ScheduleEvery(1*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Purging expired payment contexts...")
		svcs.PaymentContexts.PurgeExpired()
		return nil
	})

	// Daily reminders for challans awaiting payment
	worker.ScheduleEvery(24*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Sending due challan reminders...")
		return svcs.Challan.SendDueReminders(ctx)
	})

	logger.Info("Scheduled recurring jobs")
}
