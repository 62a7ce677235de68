package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	matrixEndpoint = "https://maps.googleapis.com/maps/api/distancematrix/json"
	metersPerMile  = 0.000621371
)

// googleMatrixClient calls the Google Distance Matrix API.
type googleMatrixClient struct {
	client *http.Client
}

func newGoogleMatrixClient() *googleMatrixClient {
	return &googleMatrixClient{client: &http.Client{Timeout: 10 * time.Second}}
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// distanceMatrix resolves the primary pickup-to-dropoff leg. Intermediate
// stops are priced through the flat detour allowance, not routed.
func (g *googleMatrixClient) distanceMatrix(ctx context.Context, origin, destination string, _ []string, key string) (RouteInfo, error) {
	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination)
	params.Set("mode", "driving")
	params.Set("units", "imperial")
	params.Set("key", key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, matrixEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return RouteInfo{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return RouteInfo{}, fmt.Errorf("distance matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var data matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return RouteInfo{}, fmt.Errorf("failed to decode distance matrix response: %w", err)
	}

	if data.Status != "OK" || len(data.Rows) == 0 || len(data.Rows[0].Elements) == 0 {
		return RouteInfo{}, fmt.Errorf("route invalid: %s", data.Status)
	}
	element := data.Rows[0].Elements[0]
	if element.Status != "OK" || element.Distance.Value == 0 {
		return RouteInfo{}, fmt.Errorf("route invalid: %s", element.Status)
	}

	miles := float64(element.Distance.Value) * metersPerMile
	return RouteInfo{Miles: miles, DurationText: element.Duration.Text}, nil
}

// NormalizeAddress disambiguates a bare address with the service area.
// Already-qualified addresses (containing a comma or a Colorado marker)
// pass through untouched. This is best-effort: it never fails, so a raw
// string can always continue into pricing.
func NormalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if strings.Contains(addr, ",") {
		return addr
	}
	lower := strings.ToLower(addr)
	if strings.Contains(lower, " co") || strings.Contains(lower, "colorado") {
		return addr
	}
	// A bare street number without a city lands in the home market.
	if addr[0] >= '0' && addr[0] <= '9' && !strings.Contains(lower, "springs") {
		return addr + ", Colorado Springs, CO"
	}
	return addr + ", CO"
}

// surchargeKeywords mark the mountain-corridor service area that carries a
// flat surcharge regardless of distance.
var surchargeKeywords = []string{"woodland park", "divide", "cripple creek", "teller", "florissant"}

// IsSurchargeZone reports whether either endpoint falls in the surcharge
// corridor, by keyword match on the combined address text.
func IsSurchargeZone(pickup, dropoff string) bool {
	combined := strings.ToLower(pickup + " " + dropoff)
	for _, kw := range surchargeKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}
