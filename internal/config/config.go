package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"productparser/internal/crawler"
	"productparser/internal/normalize"
)

type Config struct {
	DatabaseURL  string
	RedisURL     string
	PageCacheTTL time.Duration
	OpenAIKey    string
	MetricsPort  string
	WorkerCount  int

	FetchTimeout time.Duration
	MaxBodyBytes int64
	UserAgent    string
	SiteOrigin   string
	Colors       []string

	LogLevel string
	LogFile  string
}

func Load() (*Config, error) {
	// .env from the project root, then from the working directory
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		UserAgent:   getEnv("USER_AGENT", crawler.DefaultUserAgent),
		SiteOrigin:  strings.TrimRight(getEnv("SITE_ORIGIN", "https://brain.com.ua"), "/"),
		Colors:      splitList(getEnv("COLOR_VOCABULARY", strings.Join(normalize.DefaultColors, ","))),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     os.Getenv("LOG_FILE"),
	}

	var err error
	if cfg.WorkerCount, err = strconv.Atoi(getEnv("WORKER_COUNT", "5")); err != nil || cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("invalid WORKER_COUNT %q", os.Getenv("WORKER_COUNT"))
	}
	if cfg.FetchTimeout, err = time.ParseDuration(getEnv("FETCH_TIMEOUT", "60s")); err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	if cfg.PageCacheTTL, err = time.ParseDuration(getEnv("PAGE_CACHE_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("invalid PAGE_CACHE_TTL: %w", err)
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", strconv.Itoa(crawler.DefaultMaxBodyBytes)), 10, 64); err != nil {
		slog.Warn("Invalid MAX_BODY_BYTES, using default", "value", os.Getenv("MAX_BODY_BYTES"), "error", err)
		cfg.MaxBodyBytes = crawler.DefaultMaxBodyBytes
	}
	if len(cfg.Colors) == 0 {
		return nil, fmt.Errorf("COLOR_VOCABULARY is empty")
	}

	return cfg, nil
}

// RequireDatabase reports a missing DATABASE_URL for commands that persist.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("missing required environment variable: DATABASE_URL")
	}
	return nil
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
