package payload

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/maplist-cli/internal/model"
)

// Decode maps the matched list array into the domain model using the
// positional contract in f. The list name is the only hard requirement;
// everything else degrades: a nameless place entry is dropped, a missing
// address or coordinate pair leaves the field unset. Dropped entries and
// absent coordinates surface only as debug logs. Decode does not mutate the
// tree, so decoding the same node twice yields equal results.
func Decode(list *Node, f *Format) (*model.List, error) {
	name, ok := stringAt(list, f.List.Name)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, ErrListNameMissing
	}

	description, _ := stringAt(list, f.List.Description)

	var creator string
	if creatorArr, ok := arrayAt(list, f.List.Creator); ok {
		creator, _ = stringAt(creatorArr, f.List.CreatorName)
	}

	var places []model.Place
	if entries, ok := arrayAt(list, f.List.Places); ok {
		for i := 0; i < entries.Len(); i++ {
			entry, _ := entries.Index(i)
			place, ok := decodePlace(entry, f)
			if !ok {
				zap.L().Debug("dropping place entry without a name", zap.Int("index", i))
				continue
			}
			places = append(places, place)
		}
	}

	return model.NewList(name, description, creator, places)
}

// decodePlace decodes one place-entry array. ok=false means the entry has no
// usable name and should be dropped; partial extraction beats total failure,
// so every other absence just leaves the field unset.
func decodePlace(entry *Node, f *Format) (model.Place, bool) {
	name, ok := stringAt(entry, f.Place.Name)
	if !ok || strings.TrimSpace(name) == "" {
		return model.Place{}, false
	}

	place := model.Place{Name: name}
	place.Notes, _ = stringAt(entry, f.Place.Notes)

	location, ok := arrayAt(entry, f.Place.Location)
	if !ok {
		return place, true
	}
	place.Address, _ = stringAt(location, f.Location.Address)

	// Coordinates are set as a pair or not at all.
	if coords, ok := arrayAt(location, f.Location.Coordinates); ok {
		lat, latOK := numberAt(coords, f.Coordinates.Latitude)
		lng, lngOK := numberAt(coords, f.Coordinates.Longitude)
		if latOK && lngOK {
			place.SetCoords(lat, lng)
		} else {
			zap.L().Debug("place entry has incomplete coordinates", zap.String("name", name))
		}
	}

	return place, true
}

func stringAt(n *Node, i int) (string, bool) {
	child, ok := n.Index(i)
	if !ok {
		return "", false
	}
	return child.Str()
}

func numberAt(n *Node, i int) (float64, bool) {
	child, ok := n.Index(i)
	if !ok {
		return 0, false
	}
	return child.Num()
}

func arrayAt(n *Node, i int) (*Node, bool) {
	child, ok := n.Index(i)
	if !ok || !child.IsArray() {
		return nil, false
	}
	return child, true
}
