package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/maplist-cli/internal/model"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"kml", "CSV", " geojson ", "xlsx", "shp"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("gpx")
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	list := testList(t)
	path := OutputPath("/tmp/out", list, FormatKML)
	assert.Equal(t, filepath.Join("/tmp/out", "coffee-spots.kml"), path)
}

// testList builds a list with one georeferenced place and one without
// coordinates, shared by the writer tests.
func testList(t *testing.T) *model.List {
	t.Helper()
	cafe := model.Place{Name: "Cafe", Address: "123 Main St", Notes: "Nice coffee"}
	cafe.SetCoords(40.1, -3.7)
	bare := model.Place{Name: "Mystery spot"}

	list, err := model.NewList("Coffee spots", "the good ones", "Jane", []model.Place{cafe, bare})
	require.NoError(t, err)
	return list
}
