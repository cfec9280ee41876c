package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_rooms/internal/adapters/observability"
	"hotel_rooms/internal/app"
	"hotel_rooms/internal/domain"
	"hotel_rooms/internal/shared"
	mysqlrepo "hotel_rooms/internal/storage/mysql"
)

// seeder copies the YAML catalog (embedded or CATALOG_FILE) into MySQL.
func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanups execute before exit.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	source := cfg.CatalogSource
	if source == shared.SourceMySQL {
		source = shared.SourceEmbedded
	}
	cat, err := app.LoadCatalog(ctx, source, cfg.CatalogFile, nil)
	if err != nil {
		log.Error().Err(err).Msg("catalog load failed")
		return 1
	}
	log.Info().
		Str("source", source).
		Str("fingerprint", cat.Fingerprint()).
		Int("rooms", cat.Len()).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Error().Err(err).Msg("sql.Open failed")
		return 1
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("db.Ping failed")
		return 1
	}
	log.Info().Msg("db ping ok")

	seed := app.NewSeedService(mysqlrepo.New(db))

	workers := cfg.SeedWorkers
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, room := range cat.ListAll() {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Error().Err(err).Msg("semaphore acquire failed")
			failed.Add(1)
			break
		}

		wg.Add(1)
		go func(r domain.Room) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seed.SeedRoom(ctx, r); err != nil {
				failed.Add(1)
				log.Warn().Int64("id", r.ID).Str("slug", r.Slug).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int64("id", r.ID).Str("slug", r.Slug).Msg("seed ok")
		}(room)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Error().Int32("failed", n).Msg("seeding completed with failures")
		return 1
	}
	log.Info().Msg("seeding completed")
	return 0
}
