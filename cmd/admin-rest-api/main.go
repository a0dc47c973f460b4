// cmd/admin-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/gauravkdm/admin-portal/internal/api/rest/v1"
	"github.com/gauravkdm/admin-portal/internal/app"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/cache"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/mailer"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/otp"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/session"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	if restConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db         *gorm.DB
	redis      *redis.Client
	closers    []io.Closer
	services   *v1.Services
	routeCache *v1.RouteCache
}

func (d *appDependencies) close(log logger.Logger) {
	for _, c := range d.closers {
		if err := c.Close(); err != nil {
			log.Warn("Failed to close dependency: ", err)
		}
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			log.Warn("Failed to close redis client: ", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("Failed to close database: ", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	deps := &appDependencies{db: db}

	if cfg.NeedsRedis() {
		deps.redis, err = connectRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info("Connected to redis at ", cfg.Redis.Addr)
	}

	routeStore, err := cache.NewStore(&cfg.Cache, deps.redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create route cache: %w", err)
	}
	deps.routeCache = v1.NewRouteCache(routeStore, cfg.Cache.TTL, log)

	deps.services, err = initializeApplicationServices(cfg, db, deps, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return deps, nil
}

func connectRedis(settings *config.RedisSettings) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.Addr, err)
	}
	return client, nil
}

// initializeApplicationServices creates repositories and the services built on them
func initializeApplicationServices(cfg *config.RestConfig, db *gorm.DB, deps *appDependencies, log logger.Logger) (*v1.Services, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	eventRepo, err := persistence.NewGormEventRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event repository: %w", err)
	}
	ticketRepo, err := persistence.NewGormTicketRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket repository: %w", err)
	}
	payoutRepo, err := persistence.NewGormPayoutRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payout repository: %w", err)
	}
	moderationRepo, err := persistence.NewGormModerationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create moderation repository: %w", err)
	}
	contentRepo, err := persistence.NewGormContentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create content repository: %w", err)
	}
	logRepo, err := persistence.NewGormLogRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create log repository: %w", err)
	}
	notificationRepo, err := persistence.NewGormNotificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	analyticsRepo, err := persistence.NewGormAnalyticsRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics repository: %w", err)
	}

	// Login infrastructure
	otpProvider, err := otp.NewProvider(&cfg.OTP, deps.redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create otp provider: %w", err)
	}
	dispatcher, err := otp.NewDispatcher(&cfg.SMS, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create sms dispatcher: %w", err)
	}
	if closer, ok := dispatcher.(io.Closer); ok {
		deps.closers = append(deps.closers, closer)
	}
	sessions, err := session.NewJWTManager(&cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	authService, err := app.NewAuthService(
		otpProvider, dispatcher, logRepo, userRepo, sessions,
		otp.NewKeyedLimiter(cfg.OTP.SendRatePerMinute),
		cfg.OTP.DefaultCountryCode, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	userService, err := app.NewUserService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	eventService, err := app.NewEventService(eventRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
	}
	ticketService, err := app.NewTicketService(ticketRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket service: %w", err)
	}

	calculator, err := payouts.NewFeeCalculator(cfg.Finance.PlatformFeePercent, cfg.Finance.GSTPercent)
	if err != nil {
		return nil, fmt.Errorf("failed to create fee calculator: %w", err)
	}
	payoutService, err := app.NewPayoutService(payoutRepo, eventRepo, calculator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payout service: %w", err)
	}

	demoMailer, err := mailer.NewDemoMailer(&cfg.Mailer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create demo mailer: %w", err)
	}
	moderationService, err := app.NewModerationService(moderationRepo, demoMailer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create moderation service: %w", err)
	}

	contentService, err := app.NewContentService(contentRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}
	logService, err := app.NewLogService(logRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create log service: %w", err)
	}
	notificationService, err := app.NewNotificationService(notificationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}
	analyticsService, err := app.NewAnalyticsService(analyticsRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Auth:          authService,
		Users:         userService,
		Events:        eventService,
		Tickets:       ticketService,
		Payouts:       payoutService,
		Moderation:    moderationService,
		Content:       contentService,
		Logs:          logService,
		Notifications: notificationService,
		Analytics:     analyticsService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// The dashboard sends the session cookie, so origins are an explicit list
	r.Use(v1.CORS(cfg.CORS.AllowedOrigins))

	metrics := v1.NewMetrics()
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, v1.MessageResponse{Message: "ok"})
	})

	// Setup API routes
	v1.SetupRoutes(r, deps.services, deps.routeCache, v1.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
