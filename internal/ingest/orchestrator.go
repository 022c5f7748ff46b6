// Package ingest runs the fetch, extract and persist pipeline for product pages.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"productparser/internal/crawler"
	"productparser/internal/extract"
	"productparser/internal/model"
	"productparser/internal/observability"
)

// Fetcher returns the markup of a product page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ProductRepository stores products and the children they own. The
// orchestrator always creates the product before attaching children;
// atomicity across calls is up to the implementation.
type ProductRepository interface {
	CreateProduct(ctx context.Context, p model.ProductRecord) (model.ProductID, error)
	AttachCharacteristic(ctx context.Context, id model.ProductID, c model.CharacteristicEntry) error
	AttachPhoto(ctx context.Context, id model.ProductID, p model.PhotoEntry) error
}

// Discarder is implemented by repositories that can remove a product
// together with its children. The orchestrator uses it to drop a product
// whose children could not all be stored.
type Discarder interface {
	Delete(ctx context.Context, id model.ProductID) error
}

// Orchestrator ingests single product pages. It keeps no per-page state, so
// one Orchestrator may serve many concurrent ingestions.
type Orchestrator struct {
	fetcher Fetcher
	builder *extract.Builder
	repo    ProductRepository
}

func NewOrchestrator(fetcher Fetcher, builder *extract.Builder, repo ProductRepository) *Orchestrator {
	return &Orchestrator{fetcher: fetcher, builder: builder, repo: repo}
}

// Ingest fetches url, builds its product and persists it. Fetch and
// validation failures are returned unchanged and nothing is persisted.
func (o *Orchestrator) Ingest(ctx context.Context, url string) (*extract.Result, model.ProductID, error) {
	html, err := o.fetcher.Fetch(ctx, url)
	if err != nil {
		observability.IngestionsTotal.WithLabelValues("fetch_error").Inc()
		return nil, "", err
	}

	doc, err := crawler.Parse(html)
	if err != nil {
		observability.IngestionsTotal.WithLabelValues("parse_error").Inc()
		return nil, "", fmt.Errorf("failed to parse %s: %w", url, err)
	}

	res, err := o.builder.Build(url, doc)
	if err != nil {
		observability.IngestionsTotal.WithLabelValues("validation_error").Inc()
		return nil, "", err
	}

	for _, w := range res.Warnings {
		observability.DataQualityWarnings.WithLabelValues(w.Field).Inc()
		slog.Warn("Data quality warning", "url", url, "field", w.Field, "message", w.Message)
	}

	id, err := o.persist(ctx, res)
	if err != nil {
		observability.IngestionsTotal.WithLabelValues("store_error").Inc()
		return res, id, err
	}

	observability.IngestionsTotal.WithLabelValues("stored").Inc()
	slog.Info("Product stored",
		"url", url,
		"id", id,
		"name", res.Record.FullName,
		"characteristics", len(res.Characteristics),
		"photos", len(res.Photos),
		"warnings", len(res.Warnings),
	)
	return res, id, nil
}

func (o *Orchestrator) persist(ctx context.Context, res *extract.Result) (model.ProductID, error) {
	id, err := o.repo.CreateProduct(ctx, res.Record)
	if err != nil {
		return "", fmt.Errorf("failed to create product %s: %w", res.Record.SourceURL, err)
	}
	for _, c := range res.Characteristics {
		if err := o.repo.AttachCharacteristic(ctx, id, c); err != nil {
			return o.discard(ctx, id, fmt.Errorf("failed to attach characteristic %q to %s: %w", c.Name, id, err))
		}
	}
	for _, p := range res.Photos {
		if err := o.repo.AttachPhoto(ctx, id, p); err != nil {
			return o.discard(ctx, id, fmt.Errorf("failed to attach photo %s to %s: %w", p.URL, id, err))
		}
	}
	return id, nil
}

// discard removes a partially stored product. The id is returned only when
// the product could not be removed and is still in the repository.
func (o *Orchestrator) discard(ctx context.Context, id model.ProductID, cause error) (model.ProductID, error) {
	d, ok := o.repo.(Discarder)
	if !ok {
		return id, cause
	}
	if err := d.Delete(ctx, id); err != nil {
		slog.Error("Failed to discard partially stored product", "id", id, "error", err)
		return id, cause
	}
	slog.Warn("Discarded partially stored product", "id", id, "error", cause)
	return "", cause
}
