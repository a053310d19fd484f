package export

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/maplist-cli/internal/model"
)

// WriteGeoJSON writes the list as a GeoJSON FeatureCollection of points.
// Places without coordinates are skipped; GeoJSON features carry geometry.
func WriteGeoJSON(list *model.List, path string) error {
	fc := &geojson.FeatureCollection{}

	var skipped int
	for _, p := range list.Places {
		if !p.HasCoords() {
			skipped++
			continue
		}
		props := map[string]any{"name": p.Name}
		if p.Address != "" {
			props["address"] = p.Address
		}
		if p.Notes != "" {
			props["notes"] = p.Notes
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   geom.NewPointFlat(geom.XY, []float64{*p.Longitude, *p.Latitude}),
			Properties: props,
		})
	}

	if skipped > 0 {
		zap.L().Debug("geojson skipped places without coordinates",
			zap.String("list", list.Name),
			zap.Int("skipped", skipped),
		)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return eris.Wrap(err, "export: marshal geojson")
	}
	return eris.Wrapf(os.WriteFile(path, data, 0o644), "export: write geojson %s", path)
}
