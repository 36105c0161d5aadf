package prayer

import (
	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/store"
)

// KaabaCoordinates is the fallback location when no device or stored
// location is available.
var KaabaCoordinates = models.Coordinates{Latitude: 21.4225, Longitude: 39.8262}

// Location is a resolved coordinate plus how it was obtained.
type Location struct {
	Coords       models.Coordinates
	UsingDefault bool
}

// Resolver supplies a device or user location. Ok is false when none is
// available.
type Resolver interface {
	Resolve() (coords models.Coordinates, ok bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func() (models.Coordinates, bool)

func (f ResolverFunc) Resolve() (models.Coordinates, bool) { return f() }

// ResolveLocation tries the resolver and falls back to the Kaaba.
func ResolveLocation(r Resolver) Location {
	if r != nil {
		if coords, ok := r.Resolve(); ok {
			return Location{Coords: coords}
		}
	}
	return Location{Coords: KaabaCoordinates, UsingDefault: true}
}

// StoredResolver reads a previously saved location from the store.
type StoredResolver struct {
	Store *store.Store
}

func (s StoredResolver) Resolve() (models.Coordinates, bool) {
	coords, ok := store.Get[models.Coordinates](s.Store, store.KeyLocation)
	if !ok || (coords.Latitude == 0 && coords.Longitude == 0) {
		return models.Coordinates{}, false
	}
	return coords, true
}

// SaveLocation persists a location for future sessions.
func SaveLocation(s *store.Store, coords models.Coordinates) error {
	return store.Set(s, store.KeyLocation, coords)
}
