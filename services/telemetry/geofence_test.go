package telemetry

import (
	"testing"
	"time"

	"summitos/models"

	"github.com/stretchr/testify/assert"
)

const (
	homeLat = 38.886637
	homeLng = -104.804107
)

// offsetLat returns a point the given number of miles due north of home.
// One degree of latitude is about 69.05 miles at this radius.
func offsetLat(miles float64) float64 {
	return homeLat + miles/69.05
}

func TestHaversineMiles(t *testing.T) {
	tests := []struct {
		name      string
		lat, lng  float64
		expected  float64
		tolerance float64
	}{
		{name: "same point", lat: homeLat, lng: homeLng, expected: 0, tolerance: 0.0001},
		{name: "quarter mile north", lat: offsetLat(0.25), lng: homeLng, expected: 0.25, tolerance: 0.005},
		{name: "downtown colorado springs", lat: 38.8339, lng: -104.8214, expected: 3.7, tolerance: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMiles(homeLat, homeLng, tt.lat, tt.lng)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestFilterPosition_InactiveAlwaysMasked(t *testing.T) {
	// Coordinates far from home, but the source cannot confirm them.
	report := models.VehiclePositionReport{Lat: 39.7392, Lng: -104.9903, Active: false}
	got := FilterPosition(report, homeLat, homeLng)

	assert.True(t, got.Privacy)
	assert.Equal(t, statusStarting, got.Status)
	assert.Zero(t, got.Lat)
	assert.Zero(t, got.Lng)
}

func TestFilterPosition_GeofenceBoundary(t *testing.T) {
	masked := FilterPosition(models.VehiclePositionReport{
		Lat: offsetLat(0.249), Lng: homeLng, Active: true,
	}, homeLat, homeLng)
	assert.True(t, masked.Privacy)
	assert.Equal(t, statusDocked, masked.Status)
	assert.Zero(t, masked.Lat)
	assert.Zero(t, masked.Speed)

	public := FilterPosition(models.VehiclePositionReport{
		Lat: offsetLat(0.251), Lng: homeLng, Speed: 35, Heading: 270,
		Timestamp: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), Active: true,
	}, homeLat, homeLng)
	assert.False(t, public.Privacy)
	assert.Empty(t, public.Status)
	assert.Equal(t, offsetLat(0.251), public.Lat)
	assert.Equal(t, homeLng, public.Lng)
	assert.Equal(t, 35.0, public.Speed)
	assert.Equal(t, 270.0, public.Heading)
	assert.False(t, public.UpdatedAt.IsZero())
}
