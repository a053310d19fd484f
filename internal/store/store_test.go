package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "maplist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestPageCache_RoundTrip(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	_, ok, err := st.GetPage(ctx, "https://example.com/list/1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.PutPage(ctx, "https://example.com/list/1", "<html>a</html>", time.Hour))

	html, ok, err := st.GetPage(ctx, "https://example.com/list/1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "<html>a</html>", html)

	// Refreshing replaces the cached copy.
	require.NoError(t, st.PutPage(ctx, "https://example.com/list/1", "<html>b</html>", time.Hour))
	html, ok, err = st.GetPage(ctx, "https://example.com/list/1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "<html>b</html>", html)
}

func TestPageCache_ExpiredRowsAreMisses(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	require.NoError(t, st.PutPage(ctx, "https://example.com/list/2", "stale", -time.Hour))

	_, ok, err := st.GetPage(ctx, "https://example.com/list/2")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := st.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestExportHistory(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	rec, err := st.RecordExport(ctx, ExportRecord{
		URL:        "https://example.com/list/3",
		ListName:   "My List",
		PlaceCount: 7,
		Format:     "kml",
		Path:       "/tmp/my-list.kml",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)

	recs, err := st.ListExports(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "My List", recs[0].ListName)
	assert.Equal(t, 7, recs[0].PlaceCount)
	assert.Equal(t, rec.ID, recs[0].ID)
}
