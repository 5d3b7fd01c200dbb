package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "wedding_venues/internal/adapters/http_server"
	"wedding_venues/internal/adapters/observability"
	redisad "wedding_venues/internal/adapters/redis"
	"wedding_venues/internal/app"
	"wedding_venues/internal/shared"
	mysqlrepo "wedding_venues/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// db; an unreachable database only degrades searches to the sample venues
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(10)
	if err := db.Ping(); err != nil {
		log.Warn().Err(err).Msg("db.Ping failed; serving sample venues until the database is reachable")
	} else {
		log.Info().Msg("database connection ok")
	}

	// deps
	rc := redisad.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	search := app.NewSearchService(mysqlrepo.New(db), redisad.New(rc), cfg.CacheTTL)
	sessions := app.NewSessionService(redisad.NewSessionStore(rc, cfg.SessionTTL), search, app.NewValidator())

	if cfg.WarmOnStart {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			n, err := app.NewWarmer(search, cfg.WarmWorkers).Warm(ctx, cfg.WarmTop)
			if err != nil {
				log.Warn().Err(err).Msg("cache warm-up interrupted")
			}
			log.Info().Int("warmed", n).Msg("cache warm-up done")
		}()
	}

	// http
	srv := server.New(server.Options{RateRPS: cfg.RateRPS, RateBurst: cfg.RateBurst})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Sessions: sessions, CookieTTL: cfg.SessionTTL})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
