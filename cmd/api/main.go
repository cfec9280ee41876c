package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "hotel_rooms/internal/adapters/http_server"
	"hotel_rooms/internal/adapters/observability"
	redisad "hotel_rooms/internal/adapters/redis"
	"hotel_rooms/internal/app"
	"hotel_rooms/internal/domain"
	"hotel_rooms/internal/shared"
	mysqlrepo "hotel_rooms/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// catalog source; the db is only needed at startup
	var repo domain.RoomRepository
	if cfg.CatalogSource == shared.SourceMySQL {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	}
	cat, err := app.LoadCatalog(ctx, cfg.CatalogSource, cfg.CatalogFile, repo)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.CatalogSource).Msg("catalog load failed")
	}
	observability.ObserveCatalog(cat.Len(), cat.CountAvailable())
	log.Info().
		Str("source", cfg.CatalogSource).
		Int("rooms", cat.Len()).
		Int("available", cat.CountAvailable()).
		Msg("catalog loaded")

	// cache is optional
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; reads fall back to catalog")
		}
		cache = rc
	}
	q := app.NewQueryService(cat, cache, cfg.CacheTTL)

	// http
	srv := server.New(server.Options{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return httpSrv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
