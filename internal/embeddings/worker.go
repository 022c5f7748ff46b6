package embeddings

import (
	"context"
	"log/slog"
	"sync"

	"productparser/internal/model"
	"productparser/internal/observability"
)

const chunkSize = 1000

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type VectorStore interface {
	DeleteByProduct(ctx context.Context, productID model.ProductID) error
	Save(ctx context.Context, productID model.ProductID, sourceURL, content string, embedding []float32) error
}

type IndexMarker interface {
	MarkAsIndexed(ctx context.Context, id model.ProductID) error
}

// RunWorkers embeds products with a fixed number of workers. A product is
// marked as indexed only when all of its chunks were stored.
func RunWorkers(
	ctx context.Context,
	products []model.StoredProduct,
	embedder Embedder,
	store VectorStore,
	marker IndexMarker,
	workers int,
) {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan model.StoredProduct)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				process(ctx, p, embedder, store, marker)
			}
		}()
	}

	for _, p := range products {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
}

func process(ctx context.Context, p model.StoredProduct, embedder Embedder, store VectorStore, marker IndexMarker) {
	if err := store.DeleteByProduct(ctx, p.ID); err != nil {
		slog.Error("Failed to clear old vectors", "product_id", p.ID, "error", err)
		return
	}

	success := true
	for _, c := range Chunk(ProductText(p), chunkSize) {
		embedding, err := embedder.Embed(ctx, c)
		if err != nil {
			slog.Error("Failed to embed chunk", "product_id", p.ID, "error", err)
			success = false
			continue
		}
		observability.EmbeddingsTotal.Inc()
		if err := store.Save(ctx, p.ID, p.Record.SourceURL, c, embedding); err != nil {
			slog.Error("Failed to store vector", "product_id", p.ID, "error", err)
			success = false
		}
	}

	if !success {
		slog.Warn("Product indexing incomplete", "product_id", p.ID)
		return
	}
	if err := marker.MarkAsIndexed(ctx, p.ID); err != nil {
		slog.Error("Failed to mark product as indexed", "product_id", p.ID, "error", err)
		return
	}
	slog.Info("Product indexed", "product_id", p.ID)
}
