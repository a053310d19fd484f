package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/maplist-cli/internal/model"
)

// WriteXLSX writes the list as a spreadsheet with one row per place.
func WriteXLSX(list *model.List, path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Places")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Name", "Address", "Notes", "Latitude", "Longitude"} {
		header.AddCell().Value = h
	}

	for _, p := range list.Places {
		row := sheet.AddRow()
		row.AddCell().Value = p.Name
		row.AddCell().Value = p.Address
		row.AddCell().Value = p.Notes
		latCell, lngCell := row.AddCell(), row.AddCell()
		if p.HasCoords() {
			latCell.SetFloat(*p.Latitude)
			lngCell.SetFloat(*p.Longitude)
		}
	}

	return eris.Wrapf(file.Save(path), "export: save xlsx %s", path)
}
