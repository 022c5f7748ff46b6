package crawler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"productparser/internal/observability"
)

const pageKeyPrefix = "page:"

// PageFetcher is anything that can return the markup of a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// CachedFetcher keeps fetched markup in Redis for TTL. Failed fetches are not
// cached and Redis outages fall through to the wrapped fetcher.
type CachedFetcher struct {
	Next   PageFetcher
	Client *redis.Client
	TTL    time.Duration
}

func (c *CachedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	key := pageKeyPrefix + url

	val, err := c.Client.Get(ctx, key).Result()
	switch {
	case err == nil:
		observability.PageCacheRequests.WithLabelValues("hit").Inc()
		slog.Debug("Page cache hit", "url", url)
		return val, nil
	case errors.Is(err, redis.Nil):
		observability.PageCacheRequests.WithLabelValues("miss").Inc()
	default:
		observability.PageCacheRequests.WithLabelValues("error").Inc()
		slog.Warn("Page cache unavailable", "url", url, "error", err)
	}

	html, err := c.Next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := c.Client.Set(ctx, key, html, c.TTL).Err(); err != nil {
		slog.Warn("Failed to store page in cache", "url", url, "error", err)
	}
	return html, nil
}
