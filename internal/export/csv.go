package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/maplist-cli/internal/model"
)

// WriteCSV writes the list as CSV with one row per place. Places without
// coordinates keep their row; the coordinate columns stay empty.
func WriteCSV(list *model.List, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create csv %s", path)
	}

	w := csv.NewWriter(f)
	rows := [][]string{{"Name", "Address", "Notes", "Latitude", "Longitude"}}
	for _, p := range list.Places {
		var lat, lng string
		if p.HasCoords() {
			lat = strconv.FormatFloat(*p.Latitude, 'f', -1, 64)
			lng = strconv.FormatFloat(*p.Longitude, 'f', -1, 64)
		}
		rows = append(rows, []string{p.Name, p.Address, p.Notes, lat, lng})
	}

	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return eris.Wrap(err, "export: write csv")
	}
	return eris.Wrapf(f.Close(), "export: close csv %s", path)
}
