// Package fetch retrieves list pages over HTTP with rate limiting and retry.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/maplist-cli/internal/resilience"
)

// Options configures the page fetcher.
type Options struct {
	UserAgent   string
	Timeout     time.Duration
	MaxAttempts int
	RateLimit   rate.Limit
	Burst       int
}

// Client fetches pages with a shared rate limiter. Safe for concurrent use.
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
}

// NewClient creates a page fetcher with the given options.
func NewClient(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = "maplist-cli/1.0"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = 3
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = 2
	}
	if opts.Burst == 0 {
		opts.Burst = 4
	}
	return &Client{
		http: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		opts:    opts,
		limiter: rate.NewLimiter(opts.RateLimit, opts.Burst),
	}
}

// FetchHTML downloads the page at rawURL and returns its body as text.
// Transient failures (429, 5xx, network timeouts) are retried with backoff;
// anything else fails immediately.
func (c *Client) FetchHTML(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", eris.Wrapf(err, "fetch: parse url %s", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", eris.Errorf("fetch: unsupported scheme %q in %s", u.Scheme, rawURL)
	}

	retryCfg := resilience.DefaultRetryConfig()
	retryCfg.MaxAttempts = c.opts.MaxAttempts
	retryCfg.OnRetry = resilience.RetryLogger("fetch list page")

	return resilience.Do(ctx, retryCfg, func(ctx context.Context) (string, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", eris.Wrap(err, "fetch: rate limiter wait")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return "", eris.Wrap(err, "fetch: create request")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept-Language", "en")

		resp, err := c.http.Do(req)
		if err != nil {
			return "", eris.Wrapf(err, "fetch: get %s", rawURL)
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return "", eris.Wrap(readErr, "fetch: read body")
		}

		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return "", resilience.NewTransientError(
				eris.Errorf("fetch: status %d from %s", resp.StatusCode, rawURL),
				resp.StatusCode,
			)
		}
		if resp.StatusCode != http.StatusOK {
			return "", eris.Errorf("fetch: unexpected status %d from %s", resp.StatusCode, rawURL)
		}

		return string(body), nil
	})
}
