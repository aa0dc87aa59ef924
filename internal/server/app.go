// Package server wires the Pawsome accounts server together: storage,
// migrations, services and the HTTP endpoint, plus graceful shutdown on
// SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/pawsome/internal/logging"
	"github.com/dmitrijs2005/pawsome/internal/server/auth"
	"github.com/dmitrijs2005/pawsome/internal/server/config"
	"github.com/dmitrijs2005/pawsome/internal/server/health"
	"github.com/dmitrijs2005/pawsome/internal/server/health/checkers"
	"github.com/dmitrijs2005/pawsome/internal/server/httpserver"
	"github.com/dmitrijs2005/pawsome/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pawsome/internal/server/services"
	"github.com/dmitrijs2005/pawsome/internal/server/storage"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	signupService *services.SignupService
	loginService  *services.LoginService
	migrate       storage.MigrateOptions
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel)

	db, m, err := storage.Open(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		repomanager:   m,
		signupService: services.NewSignupService(db, m, hasher),
		loginService:  services.NewLoginService(db, m, hasher),
		migrate:       storage.DefaultMigrateOptions,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// runMigrations never stops startup: an unreachable database is reported per
// request by the services instead.
func (app *App) runMigrations(ctx context.Context) {
	if err := storage.Migrate(ctx, app.db, app.repomanager, app.migrate, app.logger); err != nil {
		app.logger.Error(ctx, "database not migrated, continuing", "error", err)
		return
	}
	app.logger.Info(ctx, "database migrated")
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	readiness := health.NewService(checkers.NewDBChecker("database", app.db))

	s := httpserver.NewHTTPServer(httpserver.Options{
		Addr:            app.config.HTTPAddr,
		SessionTTL:      app.config.SessionTTL,
		RememberTTL:     app.config.RememberTokenTTL,
		CORSOrigins:     app.config.CORSAllowedOrigins,
		ShutdownTimeout: app.config.ShutdownTimeout,
	}, app.logger, app.signupService, app.loginService, readiness)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until the parent context is cancelled, a termination signal
// arrives or the HTTP server fails.
func (app *App) Run(parent context.Context) {
	ctx, cancelFunc := context.WithCancel(parent)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver, "address", app.config.HTTPAddr)

	app.initSignalHandler(cancelFunc)
	app.runMigrations(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
