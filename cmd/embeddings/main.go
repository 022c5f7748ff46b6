package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"productparser/internal/config"
	"productparser/internal/db"
	"productparser/internal/embeddings"
	"productparser/internal/logging"
	"productparser/internal/observability"
	"productparser/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup("embeddings", cfg.LogLevel, cfg.LogFile)

	if err := cfg.RequireDatabase(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.OpenAIKey == "" {
		slog.Error("Invalid configuration", "error", "missing required environment variable: OPENAI_API_KEY")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	observability.Start(cfg.MetricsPort)

	dbConn, err := db.New(cfg.DatabaseURL, cfg.WorkerCount)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to create connection pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	productRepo := &repository.ProductRepository{DB: dbConn}
	vectorRepo := &repository.VectorRepository{DB: pool}

	products, err := productRepo.ListPending(ctx)
	if err != nil {
		slog.Error("Failed to list products", "error", err)
		os.Exit(1)
	}
	slog.Info("Indexing products", "count", len(products))

	embeddings.RunWorkers(ctx, products, embeddings.NewOpenAIEmbedder(cfg.OpenAIKey), vectorRepo, productRepo, cfg.WorkerCount)

	slog.Info("Embeddings finished")
}
