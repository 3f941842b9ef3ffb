package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-appointment-assistant/config"
	"medical-appointment-assistant/internal/delivery/action"
	deliveryHttp "medical-appointment-assistant/internal/delivery/http"
	"medical-appointment-assistant/internal/delivery/http/handler"
	"medical-appointment-assistant/internal/delivery/http/middleware"
	"medical-appointment-assistant/internal/infrastructure/cache"
	"medical-appointment-assistant/internal/infrastructure/database"
	"medical-appointment-assistant/internal/repository"
	"medical-appointment-assistant/internal/scheduling"
	"medical-appointment-assistant/internal/service"
	"medical-appointment-assistant/internal/usecase"
	"medical-appointment-assistant/pkg/jwt"
	"medical-appointment-assistant/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Completion  *service.CompletionService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	if cfg.DB.Migrate {
		if err := runMigrations(cfg); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewConnection(cfg.DB, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// A fresh seed may have changed the roster
	if cfg.DB.Migrate {
		if err := service.InvalidateDoctorCache(context.Background(), redisClient); err != nil {
			logrus.Warnf("Failed to invalidate doctor cache: %+v", err)
		}
	}

	// Initialize all layers
	app.initialize(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func runMigrations(cfg *config.Config) error {
	migrator, err := database.NewMigrator(cfg.DB, cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// initialize wires repositories, services, usecases and the HTTP server
func (app *App) initialize(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) {
	// Initialize logger
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	clock := scheduling.NewSystemClock(cfg.App.Location())

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	medicalRecordRepo := repository.NewMedicalRecordRepository(db)
	procedureRepo := repository.NewProcedureRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewTokenStore(redisClient)
	doctorDirectory := service.NewCachedDoctorDirectory(doctorRepo, redisClient, log, cfg.Redis.DoctorCacheTTL)
	normalizer := scheduling.NewNormalizer(clock, doctorDirectory)
	app.Completion = service.NewCompletionService(appointmentRepo, auditService, clock, log, cfg.App.CompletionInterval)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, tokenStore, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, normalizer, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorDirectory)
	catalogUsecase := usecase.NewCatalogUsecase(log, procedureRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(log, userRepo, medicalRecordRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Dialogue actions
	registry := action.NewDefaultRegistry(log, action.Dependencies{
		Appointments:   appointmentUsecase,
		Doctors:        doctorUsecase,
		Catalog:        catalogUsecase,
		MedicalRecords: medicalRecordUsecase,
		Normalizer:     normalizer,
		MinConfidence:  cfg.Dialogue.MinConfidence,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	webhookHandler := handler.NewWebhookHandler(registry, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		doctorHandler,
		catalogHandler,
		medicalRecordHandler,
		auditLogHandler,
		webhookHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	app.Completion.Start()

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

	app.Completion.Stop()

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
