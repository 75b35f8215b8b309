package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	httpapi "github.com/fairstand/fairstand/internal/profile/http"
	"github.com/fairstand/fairstand/internal/profile/service"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/internal/profile/store/drivers/sqlite"
	"github.com/fairstand/fairstand/pkg/jwtx"
	"github.com/fairstand/fairstand/pkg/metricsx"
	"github.com/fairstand/fairstand/pkg/slogx"
)

// BuildVersion is the dev fallback; release builds stamp it with
// -ldflags "-X .../internal/profile/app.BuildVersion=vX.Y.Z".
var BuildVersion = "v0.1.0"

// Application encapsulates the profile service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	keys     *jwtx.KeySet
	verifier jwtx.Verifier
	metrics  *metricsx.Metrics

	// Services
	accountService       *service.AccountService
	profileService       *service.ProfileService
	shareService         *service.ShareService
	inviteService        *service.InviteService
	catalogService       *service.CatalogService
	campaignService      *service.CampaignService
	orderService         *service.OrderService
	paymentMethodService *service.PaymentMethodService
	housekeepingService  *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "profile-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initVerifier(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.metrics = metricsx.NewMetrics(prometheus.NewRegistry())

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("profile service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down profile service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("profile service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initVerifier loads the identity provider's public key and builds the
// token verifier. This service never signs anything.
func (app *Application) initVerifier() error {
	if app.cfg.IdPPublicKeyFile == "" {
		return errors.New("PROFILE_IDP_PUBLIC_KEY_FILE is required")
	}

	pemKey, err := os.ReadFile(app.cfg.IdPPublicKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read identity provider key: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddPublicKeyPEM(app.cfg.IdPKeyID, pemKey); err != nil {
		return fmt.Errorf("failed to load identity provider key: %w", err)
	}

	app.keys = keys
	app.verifier = jwtx.NewCommonEdDSA(keys, app.cfg.Issuer, app.cfg.Audience)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	guard := &service.Guard{
		Authorizer: &service.Authorizer{
			Store:   app.db,
			Metrics: app.metrics,
		},
	}

	app.accountService = &service.AccountService{Store: app.db}
	app.profileService = &service.ProfileService{
		Store:   app.db,
		Guard:   guard,
		Metrics: app.metrics,
	}
	app.shareService = &service.ShareService{
		Store:   app.db,
		Guard:   guard,
		Metrics: app.metrics,
	}
	app.inviteService = &service.InviteService{
		Store:   app.db,
		Guard:   guard,
		Metrics: app.metrics,
	}
	app.catalogService = &service.CatalogService{Store: app.db, Guard: guard}
	app.campaignService = &service.CampaignService{Store: app.db, Guard: guard}
	app.orderService = &service.OrderService{Store: app.db, Guard: guard}
	app.paymentMethodService = &service.PaymentMethodService{Store: app.db, Guard: guard}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	// Wire services to router
	router.AccountService = app.accountService
	router.ProfileService = app.profileService
	router.ShareService = app.shareService
	router.InviteService = app.inviteService
	router.CatalogService = app.catalogService
	router.CampaignService = app.campaignService
	router.OrderService = app.orderService
	router.PaymentMethodService = app.paymentMethodService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
