package ingest

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"productparser/internal/extract"
	"productparser/internal/model"
)

// Outcome is the result of ingesting one URL as part of a batch.
type Outcome struct {
	URL    string
	ID     model.ProductID
	Result *extract.Result
	Err    error
}

// IngestAll ingests every URL as an independent task, at most workers at a
// time. A failed URL does not stop the others. Outcomes follow the order of urls.
func (o *Orchestrator) IngestAll(ctx context.Context, urls []string, workers int) []Outcome {
	if workers <= 0 {
		workers = 1
	}
	outcomes := make([]Outcome, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			res, id, err := o.Ingest(gCtx, url)
			if err != nil {
				slog.Error("Ingestion failed", "url", url, "error", err)
			}
			outcomes[i] = Outcome{URL: url, ID: id, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
