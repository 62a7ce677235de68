package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"summitos/models"
)

const tessieAPIURL = "https://api.tessie.com"

// Provider supplies the vehicle's live drive state. An error means the
// provider itself is unreachable; a report with Active=false means the
// vehicle is asleep.
type Provider interface {
	GetDriveState(ctx context.Context) (models.VehiclePositionReport, error)
}

// TessieClient reads vehicle state from the Tessie API.
type TessieClient struct {
	apiKey string
	vin    string
	client *http.Client
}

func NewTessieClient(apiKey, vin string) *TessieClient {
	return &TessieClient{
		apiKey: apiKey,
		vin:    vin,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type tessieState struct {
	DriveState *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Speed     float64 `json:"speed"`
		Heading   float64 `json:"heading"`
	} `json:"drive_state"`
}

// GetDriveState fetches the current vehicle state. A response without a
// drive_state block (vehicle asleep) yields an inactive report rather than
// an error, so the caller can fail safe instead of retrying.
func (t *TessieClient) GetDriveState(ctx context.Context) (models.VehiclePositionReport, error) {
	url := fmt.Sprintf("%s/%s/state", tessieAPIURL, t.vin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.VehiclePositionReport{}, err
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return models.VehiclePositionReport{}, fmt.Errorf("telemetry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.VehiclePositionReport{}, fmt.Errorf("telemetry provider returned status %d", resp.StatusCode)
	}

	var state tessieState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return models.VehiclePositionReport{}, fmt.Errorf("failed to decode telemetry response: %w", err)
	}

	if state.DriveState == nil {
		return models.VehiclePositionReport{Active: false, Timestamp: time.Now()}, nil
	}

	return models.VehiclePositionReport{
		Lat:       state.DriveState.Latitude,
		Lng:       state.DriveState.Longitude,
		Speed:     state.DriveState.Speed,
		Heading:   state.DriveState.Heading,
		Timestamp: time.Now(),
		Active:    true,
	}, nil
}
