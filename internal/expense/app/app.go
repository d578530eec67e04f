package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/outlay-labs/outlay/internal/expense/http"
	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/internal/expense/store"
	"github.com/outlay-labs/outlay/internal/expense/store/drivers/postgres"
	"github.com/outlay-labs/outlay/internal/expense/store/drivers/sqlite"
	"github.com/outlay-labs/outlay/pkg/cryptox"
	"github.com/outlay-labs/outlay/pkg/jwtx"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the expense service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier

	tokenService   *service.TokenService
	authService    *service.AuthService
	expenseService *service.ExpenseService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "outlay-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initTokenKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("outlay api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down outlay api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("outlay api stopped")
	return nil
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DBDriver {
	case "postgres":
		if app.cfg.DatabaseURL == "" {
			return fmt.Errorf("OUTLAY_DATABASE_URL is required for the postgres driver")
		}
		db, err = postgres.NewStore(app.cfg.DatabaseURL)
	case "sqlite", "":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	default:
		return fmt.Errorf("unknown database driver %q", app.cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DBDriver)
	return nil
}

// initTokenKeys loads or generates the HS256 secret and builds the signer.
func (app *Application) initTokenKeys() error {
	secret, err := loadTokenSecret(app.cfg, app.logger)
	if err != nil {
		return fmt.Errorf("failed to load token secret: %w", err)
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return err
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256(secret, app.cfg.Issuer)

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Signer:    app.signer,
		Verifier:  app.verifier,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.TokenTTL,
	}

	app.authService = &service.AuthService{
		Store:  app.db,
		Tokens: app.tokenService,
	}

	app.expenseService = &service.ExpenseService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.CORSAllowedOrigins,
	)

	router.AuthService = app.authService
	router.ExpenseService = app.expenseService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
