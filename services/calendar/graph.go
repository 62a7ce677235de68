package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"summitos/models"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// GraphClient talks to the Microsoft Graph calendar for a single organizer
// mailbox using client-credential OAuth.
type GraphClient struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	Organizer    string
	StaffID      string
	Timezone     string

	client *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewGraphClient(tenantID, clientID, clientSecret, organizer, staffID, timezone string) *GraphClient {
	return &GraphClient{
		TenantID:     tenantID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Organizer:    organizer,
		StaffID:      staffID,
		Timezone:     timezone,
		client:       &http.Client{Timeout: 15 * time.Second},
	}
}

// token returns a cached client-credentials access token, refreshing it
// shortly before expiry.
func (g *GraphClient) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Now().Before(g.tokenExpiry.Add(-time.Minute)) {
		return g.accessToken, nil
	}

	if g.TenantID == "" || g.ClientID == "" || g.ClientSecret == "" {
		return "", fmt.Errorf("missing Microsoft Graph credentials")
	}

	tokenURL := fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", g.TenantID)
	form := url.Values{
		"client_id":     {g.ClientID},
		"scope":         {"https://graph.microsoft.com/.default"},
		"client_secret": {g.ClientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token response missing access token (status %d)", resp.StatusCode)
	}

	g.accessToken = body.AccessToken
	g.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	return g.accessToken, nil
}

type graphEvent struct {
	ID        string `json:"id,omitempty"`
	Subject   string `json:"subject,omitempty"`
	ServiceID string `json:"serviceId,omitempty"`
	Start     struct {
		DateTime string `json:"dateTime"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
	} `json:"end"`
}

// parseGraphTime handles the fractional-second timestamps Graph returns.
// Zone-less timestamps are interpreted in loc, which must match the
// timezone the calendar view was requested in.
func parseGraphTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05.9999999", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized Graph timestamp %q", s)
}

// ListBusyIntervals returns the organizer's existing reservation spans.
func (g *GraphClient) ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	accessToken, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	viewURL := fmt.Sprintf("%s/users/%s/calendar/calendarView?startDateTime=%s&endDateTime=%s",
		graphBaseURL, g.Organizer,
		url.QueryEscape(from.UTC().Format(time.RFC3339)),
		url.QueryEscape(to.UTC().Format(time.RFC3339)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, viewURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar view request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar view returned status %d", resp.StatusCode)
	}

	var body struct {
		Value []graphEvent `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode calendar view: %w", err)
	}

	intervals := make([]models.BusyInterval, 0, len(body.Value))
	for _, evt := range body.Value {
		start, err := parseGraphTime(evt.Start.DateTime, time.UTC)
		if err != nil {
			continue
		}
		end, err := parseGraphTime(evt.End.DateTime, time.UTC)
		if err != nil {
			continue
		}
		intervals = append(intervals, models.BusyInterval{Start: start, End: end})
	}
	return intervals, nil
}

// CreateReservation books the buffered span as a busy event with the trip
// details in the body. A 409 from Graph surfaces as ErrConflict.
func (g *GraphClient) CreateReservation(ctx context.Context, interval models.BufferedInterval, meta ReservationMeta) (string, error) {
	accessToken, err := g.token(ctx)
	if err != nil {
		return "", err
	}

	body := fmt.Sprintf(`<h2>Private Trip Booking</h2>
<p><strong>Customer:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Passengers:</strong> %d</p>
<p><strong>Pickup:</strong> %s</p>
<p><strong>Dropoff:</strong> %s</p>
<p><strong>Price:</strong> %s</p>
<hr>
<p><strong>Appointment Time:</strong> %s</p>
<p><strong>Buffer Start (Arrival):</strong> %s</p>
<p><strong>Buffer End (Break):</strong> %s</p>`,
		meta.CustomerName, meta.CustomerEmail, meta.CustomerPhone, meta.Passengers,
		meta.Pickup, meta.Dropoff, meta.Price,
		interval.AppointmentStart.Format(time.RFC1123),
		interval.BufferStart.Format(time.RFC1123),
		interval.BufferEnd.Format(time.RFC1123))

	payload := map[string]any{
		"subject": fmt.Sprintf("Private Trip: %s → %s", meta.Pickup, meta.Dropoff),
		"body":    map[string]string{"contentType": "HTML", "content": body},
		"start": map[string]string{
			"dateTime": interval.BufferStart.UTC().Format(time.RFC3339),
			"timeZone": g.Timezone,
		},
		"end": map[string]string{
			"dateTime": interval.BufferEnd.UTC().Format(time.RFC3339),
			"timeZone": g.Timezone,
		},
		"location": map[string]string{"displayName": meta.Pickup},
		"attendees": []map[string]any{{
			"emailAddress": map[string]string{"address": meta.CustomerEmail},
			"type":         "required",
		}},
		"categories":                 []string{"Private Trip"},
		"showAs":                     "busy",
		"isReminderOn":               true,
		"reminderMinutesBeforeStart": 30,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	eventURL := fmt.Sprintf("%s/users/%s/calendar/events", graphBaseURL, g.Organizer)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, eventURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("create event request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return "", ErrConflict
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("create event returned status %d", resp.StatusCode)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode created event: %w", err)
	}
	return created.ID, nil
}
