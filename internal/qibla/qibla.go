// Package qibla computes the great-circle bearing from a coordinate to
// the Kaaba and the compass rotation needed to face it.
package qibla

import (
	"math"

	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/prayer"
)

// Bearing returns the initial great-circle bearing from the given
// coordinate toward the Kaaba, in degrees clockwise from true north,
// normalized to [0, 360).
func Bearing(from models.Coordinates) float64 {
	return BearingTo(from, prayer.KaabaCoordinates)
}

// BearingTo returns the initial great-circle bearing between two
// coordinates, normalized to [0, 360).
func BearingTo(from, to models.Coordinates) float64 {
	lat1 := radians(from.Latitude)
	lat2 := radians(to.Latitude)
	dLon := radians(to.Longitude - from.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return normalize(degrees(math.Atan2(y, x)))
}

// RelativeRotation is the clockwise rotation from the device heading to
// the target bearing, normalized to [0, 360). A heading of zero means
// the device points at true north.
func RelativeRotation(target, heading float64) float64 {
	return normalize(target - heading)
}

// HeadingSource supplies the device's compass heading in degrees from
// true north. Ok is false when no compass is available.
type HeadingSource interface {
	Heading() (deg float64, ok bool)
}

// HeadingFunc adapts a function to the HeadingSource interface.
type HeadingFunc func() (float64, bool)

func (f HeadingFunc) Heading() (float64, bool) { return f() }

// Compass binds a position to a heading source. The target bearing is
// computed once since the position does not move.
type Compass struct {
	target float64
	source HeadingSource
}

// NewCompass creates a compass for the given position.
func NewCompass(from models.Coordinates, source HeadingSource) *Compass {
	return &Compass{target: Bearing(from), source: source}
}

// Target returns the bearing toward the Kaaba from the compass position.
func (c *Compass) Target() float64 { return c.target }

// Rotation returns the arrow rotation for the current device heading.
// Ok is false when no heading is available, in which case the caller
// should show the absolute target bearing instead.
func (c *Compass) Rotation() (deg float64, ok bool) {
	if c.source == nil {
		return 0, false
	}
	heading, ok := c.source.Heading()
	if !ok {
		return 0, false
	}
	return RelativeRotation(c.target, heading), true
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
