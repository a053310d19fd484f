package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/maplist-cli/internal/store"
)

// CachedFetcher serves pages from the local store when a fresh copy exists,
// falling back to the wrapped fetcher and caching what it fetched. A cache
// read or write failure never fails the fetch; it only loses the caching.
type CachedFetcher struct {
	Client Fetcher
	Store  *store.Store
	TTL    time.Duration
}

func (c *CachedFetcher) FetchHTML(ctx context.Context, rawURL string) (string, error) {
	if html, ok, err := c.Store.GetPage(ctx, rawURL); err != nil {
		zap.L().Warn("page cache read failed", zap.String("url", rawURL), zap.Error(err))
	} else if ok {
		return html, nil
	}

	html, err := c.Client.FetchHTML(ctx, rawURL)
	if err != nil {
		return "", err
	}

	if err := c.Store.PutPage(ctx, rawURL, html, c.TTL); err != nil {
		zap.L().Warn("page cache write failed", zap.String("url", rawURL), zap.Error(err))
	}
	return html, nil
}
