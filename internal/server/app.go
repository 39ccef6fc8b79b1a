// Package server initializes and runs the FreeFusion gateway. It wires the
// PostgreSQL repositories, the Redis session store, and the HTTP API, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Guru-25/FreeFusion/internal/logging"
	"github.com/Guru-25/FreeFusion/internal/server/accounts"
	"github.com/Guru-25/FreeFusion/internal/server/auth"
	"github.com/Guru-25/FreeFusion/internal/server/config"
	"github.com/Guru-25/FreeFusion/internal/server/documents"
	"github.com/Guru-25/FreeFusion/internal/server/httpapi"
	"github.com/Guru-25/FreeFusion/internal/server/repomanager"
	"github.com/redis/go-redis/v9"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	accountService  *accounts.Service
	documentService *documents.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	handler := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(handler)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	sessions := auth.NewRedisSessionStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))

	as := accounts.NewService(db, rm.Accounts(db), sessions, cfg)
	ds := documents.NewService(rm.Documents(db))

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		accountService:  as,
		documentService: ds,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(
		app.config.EndpointAddr,
		app.config.CORSAllowedOrigins,
		app.logger,
		app.accountService,
		app.documentService,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
}
