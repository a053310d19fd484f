package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentFormat(t *testing.T) {
	f, err := CurrentFormat()
	require.NoError(t, err)

	assert.Equal(t, 1, f.Version)
	assert.Equal(t, 2, f.Signature.EntryOffset)
	assert.Equal(t, 2, f.Signature.URLOffset)
	assert.Equal(t, "/maps/placelists/list", f.Signature.URLMarker)

	assert.Equal(t, 3, f.List.Creator)
	assert.Equal(t, 0, f.List.CreatorName)
	assert.Equal(t, 4, f.List.Name)
	assert.Equal(t, 5, f.List.Description)
	assert.Equal(t, 8, f.List.Places)

	assert.Equal(t, 1, f.Place.Location)
	assert.Equal(t, 2, f.Place.Name)
	assert.Equal(t, 3, f.Place.Notes)

	assert.Equal(t, 4, f.Location.Address)
	assert.Equal(t, 5, f.Location.Coordinates)

	assert.Equal(t, 2, f.Coordinates.Latitude)
	assert.Equal(t, 3, f.Coordinates.Longitude)
}

func TestParseFormat_Validation(t *testing.T) {
	_, err := ParseFormat([]byte(`version: 0`))
	assert.Error(t, err)

	_, err = ParseFormat([]byte("version: 1\nsignature:\n  url_marker: \"\"\n"))
	assert.Error(t, err)

	_, err = ParseFormat([]byte("version: 1\nsignature:\n  url_marker: /x\nlist:\n  name: -1\n"))
	assert.Error(t, err)

	_, err = ParseFormat([]byte(`{]`))
	assert.Error(t, err)
}
