package qibla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/prayer"
)

func TestBearingFromLondon(t *testing.T) {
	london := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	got := Bearing(london)
	// Roughly east-southeast from London.
	assert.InDelta(t, 118.98, got, 1.0)
}

func TestBearingFromJakarta(t *testing.T) {
	jakarta := models.Coordinates{Latitude: -6.2088, Longitude: 106.8456}
	got := Bearing(jakarta)
	// West-northwest from Jakarta.
	assert.InDelta(t, 295.0, got, 2.0)
}

func TestBearingAtKaabaIsNormalized(t *testing.T) {
	got := Bearing(prayer.KaabaCoordinates)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 360.0)
}

func TestBearingDueEast(t *testing.T) {
	from := models.Coordinates{Latitude: 0, Longitude: 0}
	to := models.Coordinates{Latitude: 0, Longitude: 10}
	assert.InDelta(t, 90.0, BearingTo(from, to), 0.001)
}

func TestRelativeRotation(t *testing.T) {
	assert.InDelta(t, 118.0, RelativeRotation(118, 0), 0.001)
	assert.InDelta(t, 0.0, RelativeRotation(118, 118), 0.001)
	// Heading past the target wraps instead of going negative.
	assert.InDelta(t, 350.0, RelativeRotation(10, 20), 0.001)
}

func TestCompassRotation(t *testing.T) {
	london := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	c := NewCompass(london, HeadingFunc(func() (float64, bool) {
		return 0, true
	}))

	rot, ok := c.Rotation()
	require.True(t, ok)
	assert.InDelta(t, c.Target(), rot, 0.001)
}

func TestCompassRotationFacingTarget(t *testing.T) {
	london := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	c := NewCompass(london, HeadingFunc(func() (float64, bool) {
		return Bearing(london), true
	}))

	rot, ok := c.Rotation()
	require.True(t, ok)
	assert.InDelta(t, 0.0, rot, 0.001)
}

func TestCompassWithoutHeading(t *testing.T) {
	c := NewCompass(prayer.KaabaCoordinates, nil)
	_, ok := c.Rotation()
	assert.False(t, ok)

	c = NewCompass(prayer.KaabaCoordinates, HeadingFunc(func() (float64, bool) {
		return 0, false
	}))
	_, ok = c.Rotation()
	assert.False(t, ok)
}
