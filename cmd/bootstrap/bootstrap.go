package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-appointment-api/config"
	deliveryHttp "patient-appointment-api/internal/delivery/http"
	"patient-appointment-api/internal/delivery/http/handler"
	"patient-appointment-api/internal/delivery/http/middleware"
	"patient-appointment-api/internal/infrastructure/database"
	"patient-appointment-api/internal/repository"
	"patient-appointment-api/internal/usecase"
	"patient-appointment-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const serviceVersion = "1.0.0"

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize schema; safe to repeat on an already-initialized store
	if err := database.Migrate(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	// Seed sample patients when the table is empty
	if err := database.SeedPatients(context.Background(), db, repository.NewPatientRepository()); err != nil {
		return nil, fmt.Errorf("failed to seed patients: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	docsHandler := handler.NewDocsHandler("Patient Appointment API", serviceVersion)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	var rateLimitMiddleware *middleware.RateLimitMiddleware
	if cfg.RateLimit.RPS > 0 {
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(appointmentHandler, patientHandler, docsHandler, corsMiddleware, loggingMiddleware, rateLimitMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database connection
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
