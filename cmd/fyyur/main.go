package main

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

	"fyyur/internal/config"
	"fyyur/internal/lib/logger/handlers/slogpretty"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/storage"
	"fyyur/internal/storage/postgres"
	"fyyur/internal/storage/sqlite"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting fyyur",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.StorageDriver),
	)
	log.Debug("Debug messages are enabled")

	store, err := openStorage(context.Background(), cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := newRouter(log, store, time.Now)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

// openStorage connects the configured backend and brings its schema up
// to date when auto_migrate is set.
func openStorage(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case storage.DriverPostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := s.MigrateUp(); err != nil {
				_ = s.Close()
				return nil, err
			}
		}
		return s, nil
	case storage.DriverSQLite:
		s, err := sqlite.New(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := s.Migrate(ctx); err != nil {
				_ = s.Close()
				return nil, err
			}
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
