package export

import (
	"os"

	"github.com/rotisserie/eris"
	kml "github.com/twpayne/go-kml/v2"
	"go.uber.org/zap"

	"github.com/sells-group/maplist-cli/internal/model"
)

// WriteKML writes the list as a KML document with one placemark per place.
// Places without coordinates still get a placemark, just without a point
// geometry, so no decoded data is silently lost.
func WriteKML(list *model.List, path string) error {
	children := []kml.Element{kml.Name(list.Name)}
	if list.Description != "" {
		children = append(children, kml.Description(list.Description))
	}

	var withoutCoords int
	for _, p := range list.Places {
		pm := []kml.Element{kml.Name(p.Name)}
		if p.Notes != "" {
			pm = append(pm, kml.Description(p.Notes))
		}
		if p.Address != "" {
			pm = append(pm, kml.Address(p.Address))
		}
		if p.HasCoords() {
			pm = append(pm, kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: *p.Longitude, Lat: *p.Latitude}),
			))
		} else {
			withoutCoords++
		}
		children = append(children, kml.Placemark(pm...))
	}

	if withoutCoords > 0 {
		zap.L().Debug("kml placemarks written without geometry",
			zap.String("list", list.Name),
			zap.Int("count", withoutCoords),
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create kml %s", path)
	}

	doc := kml.KML(kml.Document(children...))
	if err := doc.WriteIndent(f, "", "  "); err != nil {
		_ = f.Close()
		return eris.Wrap(err, "export: write kml")
	}
	return eris.Wrapf(f.Close(), "export: close kml %s", path)
}
