// Package model holds the decoded representation of a shared place list.
package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Place is a single pin in a list. Name is always non-empty; everything else
// is optional. Latitude and Longitude are either both set or both nil.
type Place struct {
	Name      string   `json:"name"`
	Address   string   `json:"address,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoords reports whether the place carries a coordinate pair.
func (p Place) HasCoords() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// SetCoords sets the coordinate pair. Coordinates are only ever assigned
// together; there is no way to set one without the other.
func (p *Place) SetCoords(lat, lng float64) {
	p.Latitude = &lat
	p.Longitude = &lng
}

// List is a decoded place list: metadata plus places in source order.
// Duplicate places are allowed.
type List struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Creator     string  `json:"creator,omitempty"`
	Places      []Place `json:"places"`
}

// NewList constructs a List, enforcing the non-blank name invariant.
func NewList(name, description, creator string, places []Place) (*List, error) {
	if strings.TrimSpace(name) == "" {
		return nil, eris.New("model: list name must not be blank")
	}
	return &List{
		Name:        name,
		Description: description,
		Creator:     creator,
		Places:      places,
	}, nil
}
