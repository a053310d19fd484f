package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	return NewClient(Options{
		Timeout:     5 * time.Second,
		MaxAttempts: 3,
		RateLimit:   1000,
		Burst:       1000,
	})
}

func TestFetchHTML(t *testing.T) {
	var gotUA atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html>hi</html>"))
	}))
	defer srv.Close()

	html, err := testClient().FetchHTML(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>hi</html>", html)
	assert.Equal(t, "maplist-cli/1.0", gotUA.Load())
}

func TestFetchHTML_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	html, err := testClient().FetchHTML(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", html)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchHTML_NoRetryOnNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient().FetchHTML(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchHTML_RejectsBadScheme(t *testing.T) {
	_, err := testClient().FetchHTML(context.Background(), "ftp://example.com/list")
	assert.Error(t, err)
}
