package page

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindInitScript(t *testing.T) {
	html := `<!DOCTYPE html><html><head>
<script>var analytics = true;</script>
<script>window.APP_OPTIONS={};</script>
</head><body>
<script>window.APP_INITIALIZATION_STATE=[1,2,3];window.APP_FLAGS=[];</script>
</body></html>`

	script, err := FindInitScript(html)
	require.NoError(t, err)
	assert.Contains(t, script, "window.APP_INITIALIZATION_STATE=[1,2,3]")
	assert.NotContains(t, script, "APP_OPTIONS")
}

func TestFindInitScript_FirstMatchingScript(t *testing.T) {
	html := `<html><body>
<script>window.APP_INITIALIZATION_STATE=[1];</script>
<script>window.APP_INITIALIZATION_STATE=[2];</script>
</body></html>`

	script, err := FindInitScript(html)
	require.NoError(t, err)
	assert.Contains(t, script, "=[1]")
}

func TestFindInitScript_NotFound(t *testing.T) {
	html := `<html><body><script>var nothing = 1;</script><p>hello</p></body></html>`

	_, err := FindInitScript(html)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScriptNotFound))
}

func TestFindInitScript_NoScriptsAtAll(t *testing.T) {
	_, err := FindInitScript(strings.Repeat("<p>x</p>", 3))
	assert.True(t, errors.Is(err, ErrScriptNotFound))
}
