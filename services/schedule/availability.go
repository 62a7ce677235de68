package schedule

import (
	"time"

	"summitos/models"
)

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// GenerateSlots enumerates the bookable appointment starts for a calendar
// day. Candidates sit on the 30-minute grid between the day's opening and
// closing times (end exclusive; an end at or before the start crosses
// midnight into the next day). A candidate survives only if its buffered
// interval clears every busy interval. Output is chronological and
// deterministic for identical input; each surviving slot carries a fixed
// 60-minute display window distinct from the buffered span used for
// conflict checks.
func GenerateSlots(date time.Time, hours HoursTable, busy []models.BusyInterval) ([]models.AppointmentSlot, error) {
	window := hours.HoursForDay(date.Weekday())
	if window == nil {
		return nil, nil
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	start, err := parseClock(day, window.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(day, window.End)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		// Midnight crossover: the window closes on the following day.
		end = end.AddDate(0, 0, 1)
	}

	var slots []models.AppointmentSlot
	for current := start; current.Before(end); current = current.Add(SlotIncrementMinutes * time.Minute) {
		buffered := ComputeBuffers(current, DefaultTripDurationMinutes)

		conflict := false
		for _, b := range busy {
			if Overlaps(buffered.BufferStart, buffered.BufferEnd, b.Start, b.End) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, models.AppointmentSlot{
			Start: current,
			End:   current.Add(DefaultTripDurationMinutes * time.Minute),
		})
	}
	return slots, nil
}
