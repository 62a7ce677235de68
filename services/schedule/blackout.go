package schedule

import (
	"time"

	"summitos/models"
)

// DayKey collapses a timestamp to its calendar-day identity in the given
// location. All blackout comparisons go through one business timezone so a
// client browsing from another zone cannot shift the blocked day.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// IsDateBlocked reports whether a date may not be offered: either it matches
// an outage entry, or the operator is out today and the date is today.
// Callers must check this before exposing a day's slots and again at
// confirmation time, since a date can become blocked in between.
func IsDateBlocked(date time.Time, status models.OutageStatus, today time.Time, loc *time.Location) bool {
	day := DayKey(date, loc)

	for _, entry := range status.Upcoming {
		if entry.Date == day {
			return true
		}
	}

	return status.OutToday && day == DayKey(today, loc)
}
