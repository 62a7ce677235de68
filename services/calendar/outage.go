package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"summitos/models"
	"summitos/services/schedule"
	"summitos/utils"
)

const outageLookaheadDays = 45

// GetOutageStatus scans the staff member's calendar for time-off entries over
// the lookahead window. Events carrying a service ID are customer bookings and
// are ignored; everything else marks the whole day as out of service.
func (g *GraphClient) GetOutageStatus(ctx context.Context) (models.OutageStatus, error) {
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		loc = time.UTC
	}

	accessToken, err := g.token(ctx)
	if err != nil {
		return models.OutageStatus{}, err
	}

	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, outageLookaheadDays)

	viewURL := fmt.Sprintf("%s/users/%s/calendar/calendarView?startDateTime=%s&endDateTime=%s&$top=200",
		graphBaseURL, g.StaffID,
		url.QueryEscape(from.UTC().Format(time.RFC3339)),
		url.QueryEscape(to.UTC().Format(time.RFC3339)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, viewURL, nil)
	if err != nil {
		return models.OutageStatus{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Prefer", fmt.Sprintf(`outlook.timezone="%s"`, g.Timezone))

	resp, err := g.client.Do(req)
	if err != nil {
		return models.OutageStatus{}, fmt.Errorf("time-off view request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.OutageStatus{}, fmt.Errorf("time-off view returned status %d", resp.StatusCode)
	}

	var body struct {
		Value []graphEvent `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.OutageStatus{}, fmt.Errorf("failed to decode time-off view: %w", err)
	}

	status := buildOutageStatus(body.Value, now, loc)
	logger.Debug("Refreshed outage status from staff calendar")
	return status, nil
}

func buildOutageStatus(events []graphEvent, now time.Time, loc *time.Location) models.OutageStatus {
	blocked := map[string]models.OutageEntry{}
	for _, evt := range events {
		if evt.ServiceID != "" {
			continue
		}
		start, err := parseGraphTime(evt.Start.DateTime, loc)
		if err != nil {
			continue
		}
		end, err := parseGraphTime(evt.End.DateTime, loc)
		if err != nil {
			continue
		}
		// Walk every day the event touches. All-day events end at the next
		// midnight, which the half-open loop excludes naturally.
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			key := schedule.DayKey(d, loc)
			if _, ok := blocked[key]; !ok {
				blocked[key] = models.OutageEntry{
					Date:       key,
					Reason:     evt.Subject,
					ReturnDate: schedule.DayKey(end, loc),
				}
			}
		}
	}

	upcoming := make([]models.OutageEntry, 0, len(blocked))
	for _, entry := range blocked {
		upcoming = append(upcoming, entry)
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })

	status := models.OutageStatus{Upcoming: upcoming}
	todayKey := schedule.DayKey(now, loc)
	if entry, ok := blocked[todayKey]; ok {
		status.OutToday = true
		status.ReturnDate = entry.ReturnDate
		status.Message = "We are currently out of service. Booking will resume on " + entry.ReturnDate + "."
	}
	return status
}
