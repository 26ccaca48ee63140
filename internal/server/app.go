// Package server initializes and runs the sync server: it connects to
// PostgreSQL, applies migrations, and serves the HTTP API until the process
// receives a termination signal.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hsaleh/talentdesk/internal/logging"
	"github.com/hsaleh/talentdesk/internal/server/config"
	"github.com/hsaleh/talentdesk/internal/server/httpapi"
	"github.com/hsaleh/talentdesk/internal/server/repositories/repomanager"
	"github.com/hsaleh/talentdesk/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	handlers *httpapi.Handlers
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSON()

	repos, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := repos.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db := repos.Conn()
	users := services.NewUserService(db, repos, cfg)
	syncSvc := services.NewSyncService(db, repos, logger)
	photos := services.NewPhotoService(cfg)

	handlers := httpapi.NewHandlers(users, syncSvc, photos, logger)

	return &App{config: cfg, logger: logger, handlers: handlers}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: httpapi.NewRouter(app.handlers, []byte(app.config.SecretKey)),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "listening", "addr", app.config.EndpointAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
