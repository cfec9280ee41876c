package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceMySQL    = "mysql"
)

type Config struct {
	AppEnv          string
	LogLevel        string
	HTTPAddr        string
	CatalogSource   string
	CatalogFile     string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	CacheTTL        time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	SeedWorkers     int
	ShutdownTimeout time.Duration
}

// Load reads the environment, after merging an optional .env file from the working directory.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be loaded")
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
		AppEnv:          env("APP_ENV", "prod"),
		LogLevel:        env("LOG_LEVEL", "info"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		CatalogSource:   env("CATALOG_SOURCE", SourceEmbedded),
		CatalogFile:     env("CATALOG_FILE", ""),
		MySQLDSN:        env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotel?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:       env("REDIS_ADDR", ""),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		RateLimitRPS:    atof("RATE_LIMIT_RPS", 50),
		RateLimitBurst:  atoi("RATE_LIMIT_BURST", 100),
		SeedWorkers:     atoi("SEED_WORKERS", 4),
		ShutdownTimeout: time.Duration(atoi("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	if c.CatalogSource == SourceFile && c.CatalogFile == "" {
		log.Warn().Msg("CATALOG_SOURCE=file but CATALOG_FILE is empty; falling back to embedded catalog")
		c.CatalogSource = SourceEmbedded
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
