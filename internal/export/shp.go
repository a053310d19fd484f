package export

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/maplist-cli/internal/model"
)

// WriteSHP writes the list as a point shapefile with NAME/ADDRESS/NOTES
// attributes. Places without coordinates are skipped; shapefile records need
// geometry.
func WriteSHP(list *model.List, path string) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return eris.Wrapf(err, "export: create shapefile %s", path)
	}

	fields := []shp.Field{
		shp.StringField("NAME", 120),
		shp.StringField("ADDRESS", 254),
		shp.StringField("NOTES", 254),
	}
	w.SetFields(fields)

	var row, skipped int
	for _, p := range list.Places {
		if !p.HasCoords() {
			skipped++
			continue
		}
		w.Write(&shp.Point{X: *p.Longitude, Y: *p.Latitude})
		for i, v := range []string{p.Name, p.Address, p.Notes} {
			if err := w.WriteAttribute(row, i, v); err != nil {
				w.Close()
				return eris.Wrapf(err, "export: write shapefile attribute %d", i)
			}
		}
		row++
	}

	if skipped > 0 {
		zap.L().Debug("shapefile skipped places without coordinates",
			zap.String("list", list.Name),
			zap.Int("skipped", skipped),
		)
	}

	w.Close()
	return nil
}
