package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"wedding_venues/internal/adapters/observability"
	redisad "wedding_venues/internal/adapters/redis"
	"wedding_venues/internal/app"
	"wedding_venues/internal/shared"
	mysqlrepo "wedding_venues/internal/storage/mysql"
)

// warmer fills the shared query cache for the busiest states, e.g. from a
// deploy hook, so the API starts with warm searches.
func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.WarmWorkers).
		Int("top", cfg.WarmTop).
		Dur("ttl", cfg.CacheTTL).
		Msg("warmer starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	rc := redisad.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer rc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	search := app.NewSearchService(mysqlrepo.New(db), redisad.New(rc), cfg.CacheTTL)
	n, err := app.NewWarmer(search, cfg.WarmWorkers).Warm(ctx, cfg.WarmTop)
	if err != nil {
		log.Fatal().Err(err).Int("warmed", n).Msg("warm-up failed")
	}
	log.Info().Int("warmed", n).Msg("warm-up completed")
}
