// Package export writes a decoded list to open geospatial/tabular formats.
package export

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/maplist-cli/internal/model"
)

// Format identifies an output format.
type Format string

const (
	FormatKML     Format = "kml"
	FormatCSV     Format = "csv"
	FormatGeoJSON Format = "geojson"
	FormatXLSX    Format = "xlsx"
	FormatSHP     Format = "shp"
)

// Formats lists every supported output format.
var Formats = []Format{FormatKML, FormatCSV, FormatGeoJSON, FormatXLSX, FormatSHP}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", eris.Errorf("export: unknown format %q (supported: kml, csv, geojson, xlsx, shp)", s)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// OutputPath builds the output path for a list inside dir: a slug of the
// list name plus the format extension.
func OutputPath(dir string, list *model.List, f Format) string {
	return filepath.Join(dir, Slug(list.Name)+f.Ext())
}

// Write writes the list to path in the given format.
func Write(list *model.List, f Format, path string) error {
	switch f {
	case FormatKML:
		return WriteKML(list, path)
	case FormatCSV:
		return WriteCSV(list, path)
	case FormatGeoJSON:
		return WriteGeoJSON(list, path)
	case FormatXLSX:
		return WriteXLSX(list, path)
	case FormatSHP:
		return WriteSHP(list, path)
	default:
		return eris.Errorf("export: unknown format %q", string(f))
	}
}
