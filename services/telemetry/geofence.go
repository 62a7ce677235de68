package telemetry

import (
	"math"

	"summitos/models"
)

const (
	// earthRadiusMiles is the mean Earth radius used for haversine.
	earthRadiusMiles = 3959.87
	// privacyRadiusMiles is the geofence around the home base inside which
	// positions are never published.
	privacyRadiusMiles = 0.25

	statusDocked   = "Vehicle is currently docked."
	statusStarting = "Vehicle is engaging Start-up Systems..."
)

// HaversineMiles returns the great-circle distance between two coordinates.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// FilterPosition applies the privacy geofence to a raw position report.
// A report from an unreachable or sleeping vehicle is always masked: stale
// coordinates must never leak while the source cannot confirm the current
// position. Inside the home-base radius the report is masked as docked;
// otherwise the full public report is returned.
func FilterPosition(report models.VehiclePositionReport, homeLat, homeLng float64) models.PrivacyFilteredReport {
	if !report.Active {
		return models.PrivacyFilteredReport{Privacy: true, Status: statusStarting}
	}

	if HaversineMiles(report.Lat, report.Lng, homeLat, homeLng) < privacyRadiusMiles {
		return models.PrivacyFilteredReport{Privacy: true, Status: statusDocked}
	}

	return models.PrivacyFilteredReport{
		Lat:       report.Lat,
		Lng:       report.Lng,
		Speed:     report.Speed,
		Heading:   report.Heading,
		UpdatedAt: report.Timestamp,
	}
}
