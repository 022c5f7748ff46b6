package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/redis/go-redis/v9"

	"productparser/internal/config"
	"productparser/internal/crawler"
	"productparser/internal/db"
	"productparser/internal/extract"
	"productparser/internal/ingest"
	"productparser/internal/logging"
	"productparser/internal/model"
	"productparser/internal/normalize"
	"productparser/internal/observability"
	"productparser/internal/repository"
)

// go run ./cmd/scraper -url="https://brain.com.ua/ukr/Mobilniy_telefon_Apple_iPhone_16_Pro_Max_256GB_Black_Titanium-p1145443.html"
// go run ./cmd/scraper -urls="https://...p1.html,https://...p2.html" -workers=4
func main() {
	urlArg := flag.String("url", "", "URL of a single product page")
	urlsArg := flag.String("urls", "", "Comma separated product page URLs")
	workers := flag.Int("workers", 0, "Concurrent ingestions (default WORKER_COUNT)")
	metrics := flag.Bool("metrics", false, "Expose Prometheus metrics on METRICS_PORT")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup("scraper", cfg.LogLevel, cfg.LogFile)

	urls := collectURLs(*urlArg, *urlsArg)
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "usage: scraper -url=<product page> | -urls=<a,b,c>")
		os.Exit(2)
	}
	if err := cfg.RequireDatabase(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if *workers <= 0 {
		*workers = cfg.WorkerCount
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *metrics {
		observability.Start(cfg.MetricsPort)
	}

	dbConn, err := db.New(cfg.DatabaseURL, *workers)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	var fetcher ingest.Fetcher = crawler.NewFetcher(cfg.FetchTimeout, cfg.UserAgent, cfg.MaxBodyBytes)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		fetcher = &crawler.CachedFetcher{Next: fetcher, Client: rdb, TTL: cfg.PageCacheTTL}
		slog.Info("Page cache enabled", "ttl", cfg.PageCacheTTL)
	}

	extractor := extract.NewExtractor(extract.BrainLayout, normalize.NewClassifier(cfg.Colors), cfg.SiteOrigin)
	orchestrator := ingest.NewOrchestrator(fetcher, extract.NewBuilder(extractor), &repository.ProductRepository{DB: dbConn})

	slog.Info("Scraper started", "urls", len(urls), "workers", *workers, "layout", extract.BrainLayout.Version)

	failed := 0
	for _, out := range orchestrator.IngestAll(ctx, urls, *workers) {
		if out.Err != nil {
			failed++
			logFailure(out)
			continue
		}
		logSummary(out)
	}

	slog.Info("Scraper finished", "stored", len(urls)-failed, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func collectURLs(single, list string) []string {
	var urls []string
	if s := strings.TrimSpace(single); s != "" {
		urls = append(urls, s)
	}
	for _, u := range strings.Split(list, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func logFailure(out ingest.Outcome) {
	var fetchErr *crawler.FetchError
	var validationErr *extract.ValidationError
	switch {
	case errors.As(out.Err, &fetchErr):
		slog.Error("Page could not be fetched", "url", out.URL, "status", fetchErr.StatusCode, "temporary", fetchErr.Temporary)
	case errors.As(out.Err, &validationErr):
		slog.Error("Page rejected", "url", out.URL, "field", validationErr.Field, "error", validationErr.Err)
	default:
		slog.Error("Ingestion failed", "url", out.URL, "error", out.Err)
	}
}

func logSummary(out ingest.Outcome) {
	r := out.Result.Record
	attrs := []any{
		"id", out.ID,
		"name", r.FullName,
		"color", model.Deref(r.Color),
		"memory", model.Deref(r.Memory),
		"manufacturer", model.Deref(r.Manufacturer),
		"product_code", model.Deref(r.ProductCode),
		"reviews", r.ReviewCount,
		"screen_diagonal", model.Deref(r.ScreenDiagonal),
		"screen_resolution", model.Deref(r.ScreenResolution),
		"characteristics", len(out.Result.Characteristics),
		"photos", len(out.Result.Photos),
	}
	if r.PriceRegular != nil {
		attrs = append(attrs, "price_regular", r.PriceRegular.String())
	}
	if r.PriceDiscount != nil {
		attrs = append(attrs, "price_discount", r.PriceDiscount.String())
	}
	slog.Info("Product created", attrs...)
}
