package models

import "time"

// VehiclePositionReport is the raw drive state from the telemetry provider.
// Active is false when the vehicle is asleep or unreachable, in which case
// the positional fields must not be trusted.
type VehiclePositionReport struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
	Timestamp time.Time `json:"timestamp"`
	Active    bool      `json:"active"`
}

// PrivacyFilteredReport is the public view of a position report. When
// Privacy is true all positional fields are suppressed and Status explains
// why.
type PrivacyFilteredReport struct {
	Privacy   bool      `json:"privacy,omitempty"`
	Status    string    `json:"status,omitempty"`
	Lat       float64   `json:"lat,omitempty"`
	Lng       float64   `json:"lng,omitempty"`
	Speed     float64   `json:"speed,omitempty"`
	Heading   float64   `json:"heading,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
