package shared

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	SessionTTL  time.Duration
	RateRPS     float64
	RateBurst   int
	WarmOnStart bool
	WarmWorkers int
	WarmTop     int
}

// Load reads configuration from the environment, after merging a .env
// file from the working directory when one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be parsed; using process environment")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MySQLDSN:    env("MYSQL_DSN", mysqlDSNFromParts()),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 3600)) * time.Second,
		SessionTTL:  time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,
		RateRPS:     atof("RATE_LIMIT_RPS", 10),
		RateBurst:   atoi("RATE_LIMIT_BURST", 20),
		WarmOnStart: env("WARM_ON_START", "false") == "true",
		WarmWorkers: atoi("WARM_WORKERS", 4),
		WarmTop:     atoi("WARM_TOP_LOCATIONS", 10),
	}
	if os.Getenv("MYSQL_DSN") == "" && os.Getenv("MYSQL_PASSWORD") == "" {
		log.Warn().Msg("MYSQL_PASSWORD is empty")
	}
	return c
}

// mysqlDSNFromParts composes a DSN from the individual MYSQL_* variables.
func mysqlDSNFromParts() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		env("MYSQL_USER", "root"),
		env("MYSQL_PASSWORD", ""),
		env("MYSQL_HOST", "localhost"),
		env("MYSQL_PORT", "3306"),
		env("MYSQL_DATABASE", "5033_ali"),
	)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
