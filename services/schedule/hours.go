package schedule

import (
	"fmt"
	"strings"
	"time"

	"summitos/models"
)

// HoursTable maps a weekday to its service window. A missing entry means
// closed all day.
type HoursTable map[time.Weekday]models.OperatingHours

// DefaultHoursTable returns the standing hours of operation in business
// local time. Friday runs past midnight into Saturday morning.
func DefaultHoursTable() HoursTable {
	return HoursTable{
		time.Monday:    {Start: "04:30", End: "22:00"},
		time.Tuesday:   {Start: "04:30", End: "22:00"},
		time.Wednesday: {Start: "04:30", End: "22:00"},
		time.Thursday:  {Start: "04:30", End: "22:00"},
		time.Friday:    {Start: "04:30", End: "00:00"},
		time.Saturday:  {Start: "08:00", End: "23:00"},
		time.Sunday:    {Start: "08:00", End: "18:00"},
	}
}

// HoursForDay returns the window for a weekday, or nil when closed.
func (ht HoursTable) HoursForDay(day time.Weekday) *models.OperatingHours {
	hours, ok := ht[day]
	if !ok {
		return nil
	}
	return &hours
}

// IsWithinHours reports whether a timestamp falls inside that day's window.
// An End of "00:00" is a midnight-crossing window: open from Start through
// end of day, and from midnight up to (but not past) the next day's Start.
func (ht HoursTable) IsWithinHours(t time.Time) bool {
	clock := t.Format("15:04")

	if hours := ht.HoursForDay(t.Weekday()); hours != nil {
		if hours.End == "00:00" {
			if clock >= hours.Start {
				return true
			}
		} else if clock >= hours.Start && clock <= hours.End {
			return true
		}
		// Early-morning spillover from yesterday's midnight-crossing window,
		// up to but not crossing today's own start.
		if prev := ht.HoursForDay((t.Weekday() + 6) % 7); prev != nil && prev.End == "00:00" {
			return clock < hours.Start
		}
		return false
	}

	if prev := ht.HoursForDay((t.Weekday() + 6) % 7); prev != nil && prev.End == "00:00" {
		return clock == "00:00"
	}
	return false
}

// NormalizeHours sanitizes a window sourced from an external hours feed.
// Late-night Friday/Saturday windows sometimes arrive with an end of
// "00:00" or an early-morning spillover; those are clamped to 23:30 so a
// bad feed cannot bleed slots into the next day.
func NormalizeHours(day time.Weekday, hours models.OperatingHours) models.OperatingHours {
	if day == time.Friday || day == time.Saturday {
		if hours.End == "00:00" || hours.End < "04:00" {
			hours.End = "23:30"
		}
	}
	return hours
}

var dayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// TableFromPayload builds an HoursTable from a day-name-keyed external hours
// payload, running each window through NormalizeHours. Unknown day names are
// dropped; days absent from the payload stay closed.
func TableFromPayload(payload map[string]models.OperatingHours) HoursTable {
	table := make(HoursTable, len(payload))
	for name, hours := range payload {
		day, ok := dayNames[strings.ToLower(name)]
		if !ok {
			continue
		}
		table[day] = NormalizeHours(day, hours)
	}
	return table
}

// parseClock resolves an "HH:MM" wall-clock string onto a calendar day.
func parseClock(day time.Time, clock string) (time.Time, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hh, &mm); err != nil {
		return time.Time{}, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, day.Location()), nil
}
