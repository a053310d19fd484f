package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/maplist-cli/internal/page"
	"github.com/sells-group/maplist-cli/internal/payload"
)

const fixtureHTML = `<html><head><script>var x=1;</script></head><body>
<script>window.APP_INITIALIZATION_STATE=[null,null,[0,0,"https://www.google.com/maps/placelists/list/abc"],["Jane"],"My List","A description",0,0,[[null,[0,0,0,0,"123 Main St",[0,0,40.1,-3.7]],"Cafe","Nice coffee"]]];</script>
</body></html>`

type fakeFetcher struct {
	html  string
	err   error
	calls int
}

func (f *fakeFetcher) FetchHTML(ctx context.Context, rawURL string) (string, error) {
	f.calls++
	return f.html, f.err
}

func TestConvert(t *testing.T) {
	list, err := Convert(context.Background(), &fakeFetcher{html: fixtureHTML}, "https://maps.example/list")
	require.NoError(t, err)

	assert.Equal(t, "My List", list.Name)
	assert.Equal(t, "Jane", list.Creator)
	require.Len(t, list.Places, 1)
	assert.Equal(t, "Cafe", list.Places[0].Name)
}

func TestConvert_FetchError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Convert(context.Background(), &fakeFetcher{err: boom}, "https://maps.example/list")
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestConvert_ScriptNotFound(t *testing.T) {
	_, err := Convert(context.Background(), &fakeFetcher{html: "<html><body>nothing</body></html>"}, "u")
	assert.True(t, errors.Is(err, page.ErrScriptNotFound))
}

func TestConvert_ExtractFailed(t *testing.T) {
	html := `<html><script>window.APP_INITIALIZATION_STATE=[1,2</script></html>`
	_, err := Convert(context.Background(), &fakeFetcher{html: html}, "u")
	assert.True(t, errors.Is(err, payload.ErrExtractFailed))
}

func TestConvert_SignatureNotFound(t *testing.T) {
	html := `<html><script>window.APP_INITIALIZATION_STATE=[1,[2,3]]</script></html>`
	_, err := Convert(context.Background(), &fakeFetcher{html: html}, "u")
	assert.True(t, errors.Is(err, payload.ErrSignatureNotFound))
}
