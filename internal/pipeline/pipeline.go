// Package pipeline runs one list URL through fetch, script location,
// payload extraction and positional decoding. Each call is independent and
// re-entrant; converting several lists concurrently needs no coordination.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/maplist-cli/internal/model"
	"github.com/sells-group/maplist-cli/internal/page"
	"github.com/sells-group/maplist-cli/internal/payload"
)

// Fetcher fetches a page body. Satisfied by fetch.Client and CachedFetcher.
type Fetcher interface {
	FetchHTML(ctx context.Context, rawURL string) (string, error)
}

// Convert fetches the list page at listURL and decodes it into the domain
// model. Every stage failure carries its own error kind; nothing is retried
// here (the fetcher owns transport retries).
func Convert(ctx context.Context, f Fetcher, listURL string) (*model.List, error) {
	log := zap.L().With(zap.String("url", listURL))

	html, err := f.FetchHTML(ctx, listURL)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: fetch %s", listURL)
	}
	log.Debug("fetched list page", zap.Int("bytes", len(html)))

	script, err := page.FindInitScript(html)
	if err != nil {
		return nil, err
	}

	raw, err := payload.ExtractInitArray(script)
	if err != nil {
		return nil, err
	}
	log.Debug("extracted initialization array", zap.Int("bytes", len(raw)))

	root, err := payload.Parse(raw)
	if err != nil {
		return nil, err
	}

	format, err := payload.CurrentFormat()
	if err != nil {
		return nil, err
	}

	listNode, err := payload.FindListNode(root, format)
	if err != nil {
		return nil, err
	}

	list, err := payload.Decode(listNode, format)
	if err != nil {
		return nil, err
	}

	log.Info("decoded place list",
		zap.String("list", list.Name),
		zap.Int("places", len(list.Places)),
	)
	return list, nil
}
