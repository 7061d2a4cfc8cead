package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyyur/internal/config"
	"fyyur/internal/lib/logger/handlers/slogpretty"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/seed"
	"fyyur/internal/storage"
	"fyyur/internal/storage/postgres"
	"fyyur/internal/storage/sqlite"
)

func main() {
	var (
		direction string
		withSeed  bool
	)

	flag.StringVar(&direction, "direction", "up", "migration direction: up or down")
	flag.BoolVar(&withSeed, "seed", false, "load the demo venues, artists and shows after migrating up")
	flag.Parse()

	cfg := config.MustLoad()

	log := slog.New(slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}.NewPrettyHandler(os.Stdout))

	log = log.With(slog.String("storage", cfg.StorageDriver), slog.String("direction", direction))

	if err := run(context.Background(), log, cfg, direction, withSeed); err != nil {
		log.Error("migration failed", sl.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg *config.Config, direction string, withSeed bool) error {
	if direction != "up" && direction != "down" {
		return fmt.Errorf("unknown direction %q", direction)
	}
	if withSeed && direction == "down" {
		return errors.New("-seed only applies when migrating up")
	}

	var store seed.Store

	switch cfg.StorageDriver {
	case storage.DriverPostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return err
		}
		defer s.Close()

		if direction == "up" {
			err = s.MigrateUp()
		} else {
			err = s.MigrateDown()
		}
		if err != nil {
			return err
		}

		version, dirty, err := s.Version()
		if err != nil {
			return err
		}
		log.Info("migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

		store = s
	case storage.DriverSQLite:
		if direction == "down" {
			return errors.New("sqlite schema has no down migration")
		}

		s, err := sqlite.New(cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		if err = s.Migrate(ctx); err != nil {
			return err
		}
		log.Info("schema created", slog.String("path", cfg.SQLite.Path))

		store = s
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if !withSeed {
		return nil
	}

	res, err := seed.Load(ctx, store)
	if err != nil {
		return err
	}

	log.Info("demo data loaded",
		slog.Int("venues", res.Venues),
		slog.Int("artists", res.Artists),
		slog.Int("shows", res.Shows),
	)

	return nil
}
