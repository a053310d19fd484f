package payload

import (
	_ "embed"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// InitStateMarker introduces the initialization payload inside the page's
// script block. The balanced array starts somewhere after this literal.
const InitStateMarker = "window.APP_INITIALIZATION_STATE="

//go:embed format.yaml
var formatYAML []byte

// Format is the versioned positional contract for the list payload. All
// offsets are 0-indexed positions inside their enclosing array; see
// format.yaml for the authoritative, documented copy.
type Format struct {
	Version     int               `yaml:"version"`
	Signature   SignatureFormat   `yaml:"signature"`
	List        ListOffsets       `yaml:"list"`
	Place       PlaceOffsets      `yaml:"place"`
	Location    LocationOffsets   `yaml:"location"`
	Coordinates CoordinateOffsets `yaml:"coordinates"`
}

// SignatureFormat anchors the structural search for the list array.
type SignatureFormat struct {
	EntryOffset int    `yaml:"entry_offset"`
	URLOffset   int    `yaml:"url_offset"`
	URLMarker   string `yaml:"url_marker"`
}

// ListOffsets positions the list-level fields.
type ListOffsets struct {
	Creator     int `yaml:"creator"`
	CreatorName int `yaml:"creator_name"`
	Name        int `yaml:"name"`
	Description int `yaml:"description"`
	Places      int `yaml:"places"`
}

// PlaceOffsets positions the fields of one place entry.
type PlaceOffsets struct {
	Location int `yaml:"location"`
	Name     int `yaml:"name"`
	Notes    int `yaml:"notes"`
}

// LocationOffsets positions the fields of a place's location sub-array.
type LocationOffsets struct {
	Address     int `yaml:"address"`
	Coordinates int `yaml:"coordinates"`
}

// CoordinateOffsets positions latitude and longitude in the coordinate
// sub-array.
type CoordinateOffsets struct {
	Latitude  int `yaml:"latitude"`
	Longitude int `yaml:"longitude"`
}

// ParseFormat parses and validates a format document.
func ParseFormat(data []byte) (*Format, error) {
	var f Format
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "payload: parse format")
	}
	if f.Version < 1 {
		return nil, eris.Errorf("payload: format version %d is not positive", f.Version)
	}
	if f.Signature.URLMarker == "" {
		return nil, eris.New("payload: format signature url_marker is empty")
	}
	for name, off := range map[string]int{
		"signature.entry_offset": f.Signature.EntryOffset,
		"signature.url_offset":   f.Signature.URLOffset,
		"list.creator":           f.List.Creator,
		"list.creator_name":      f.List.CreatorName,
		"list.name":              f.List.Name,
		"list.description":       f.List.Description,
		"list.places":            f.List.Places,
		"place.location":         f.Place.Location,
		"place.name":             f.Place.Name,
		"place.notes":            f.Place.Notes,
		"location.address":       f.Location.Address,
		"location.coordinates":   f.Location.Coordinates,
		"coordinates.latitude":   f.Coordinates.Latitude,
		"coordinates.longitude":  f.Coordinates.Longitude,
	} {
		if off < 0 {
			return nil, eris.Errorf("payload: format offset %s is negative", name)
		}
	}
	return &f, nil
}

var currentFormat = sync.OnceValues(func() (*Format, error) {
	return ParseFormat(formatYAML)
})

// CurrentFormat returns the embedded format contract.
func CurrentFormat() (*Format, error) {
	return currentFormat()
}
