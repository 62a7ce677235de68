package schedule

import (
	"testing"
	"time"

	"summitos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var denver = func() *time.Location {
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		panic(err)
	}
	return loc
}()

func at(t *testing.T, year int, month time.Month, day, hh, mm int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hh, mm, 0, 0, denver)
}

func TestComputeBuffers(t *testing.T) {
	start := at(t, 2026, time.March, 9, 10, 0) // Monday
	got := ComputeBuffers(start, 60)

	assert.Equal(t, start.Add(-30*time.Minute), got.BufferStart)
	assert.Equal(t, start, got.AppointmentStart)
	assert.Equal(t, start.Add(60*time.Minute), got.AppointmentEnd)
	assert.Equal(t, start.Add(90*time.Minute), got.BufferEnd)
}

func TestComputeBuffers_DefaultDuration(t *testing.T) {
	start := at(t, 2026, time.March, 9, 10, 0)
	got := ComputeBuffers(start, 0)
	assert.Equal(t, start.Add(60*time.Minute), got.AppointmentEnd)
}

func TestIsWithinHours(t *testing.T) {
	hours := DefaultHoursTable()

	tests := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{"monday inside", at(t, 2026, time.March, 9, 10, 0), true},
		{"monday before open", at(t, 2026, time.March, 9, 4, 0), false},
		{"monday at open", at(t, 2026, time.March, 9, 4, 30), true},
		{"monday after close", at(t, 2026, time.March, 9, 22, 30), false},
		{"friday late night crosses midnight", at(t, 2026, time.March, 13, 23, 30), true},
		{"sunday evening closed", at(t, 2026, time.March, 8, 19, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hours.IsWithinHours(tt.ts))
		})
	}
}

func TestNormalizeHours_MidnightBleed(t *testing.T) {
	clamped := NormalizeHours(time.Friday, models.OperatingHours{Start: "04:30", End: "00:00"})
	assert.Equal(t, "23:30", clamped.End)

	clamped = NormalizeHours(time.Saturday, models.OperatingHours{Start: "08:00", End: "02:00"})
	assert.Equal(t, "23:30", clamped.End)

	untouched := NormalizeHours(time.Monday, models.OperatingHours{Start: "04:30", End: "00:00"})
	assert.Equal(t, "00:00", untouched.End)
}

func TestGenerateSlots_ClosedDayIsEmpty(t *testing.T) {
	hours := HoursTable{time.Monday: {Start: "09:00", End: "17:00"}}
	slots, err := GenerateSlots(at(t, 2026, time.March, 10, 0, 0), hours, nil) // Tuesday
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_GridAndDisplayWindow(t *testing.T) {
	hours := HoursTable{time.Monday: {Start: "09:00", End: "11:00"}}
	slots, err := GenerateSlots(at(t, 2026, time.March, 9, 0, 0), hours, nil)
	require.NoError(t, err)

	// 09:00, 09:30, 10:00, 10:30 — end exclusive.
	require.Len(t, slots, 4)
	assert.Equal(t, at(t, 2026, time.March, 9, 9, 0), slots[0].Start)
	assert.Equal(t, at(t, 2026, time.March, 9, 10, 30), slots[3].Start)
	for _, s := range slots {
		assert.Equal(t, s.Start.Add(60*time.Minute), s.End)
	}
}

func TestGenerateSlots_MidnightCrossover(t *testing.T) {
	hours := DefaultHoursTable()
	slots, err := GenerateSlots(at(t, 2026, time.March, 13, 0, 0), hours, nil) // Friday
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	last := slots[len(slots)-1]
	assert.Equal(t, at(t, 2026, time.March, 13, 23, 30), last.Start)
}

func TestGenerateSlots_BusyIntervalRejection(t *testing.T) {
	hours := HoursTable{time.Monday: {Start: "09:00", End: "12:00"}}
	busy := []models.BusyInterval{
		{Start: at(t, 2026, time.March, 9, 10, 0), End: at(t, 2026, time.March, 9, 11, 0)},
	}

	slots, err := GenerateSlots(at(t, 2026, time.March, 9, 0, 0), hours, busy)
	require.NoError(t, err)

	// Every surviving slot's buffered span must clear the busy interval.
	for _, s := range slots {
		buffered := ComputeBuffers(s.Start, DefaultTripDurationMinutes)
		assert.False(t, Overlaps(buffered.BufferStart, buffered.BufferEnd, busy[0].Start, busy[0].End),
			"slot %v overlaps busy interval", s.Start)
	}
	// Buffered spans through 11:00 all touch the busy window; 11:30 is the
	// first start whose buffer (11:00–13:00) clears it under half-open
	// comparison.
	require.NotEmpty(t, slots)
	assert.Equal(t, at(t, 2026, time.March, 9, 11, 30), slots[0].Start)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	hours := DefaultHoursTable()
	busy := []models.BusyInterval{
		{Start: at(t, 2026, time.March, 9, 8, 0), End: at(t, 2026, time.March, 9, 9, 0)},
		{Start: at(t, 2026, time.March, 9, 14, 0), End: at(t, 2026, time.March, 9, 15, 30)},
	}

	first, err := GenerateSlots(at(t, 2026, time.March, 9, 0, 0), hours, busy)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := GenerateSlots(at(t, 2026, time.March, 9, 0, 0), hours, busy)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	// Chronological order.
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Start.Before(first[i].Start))
	}
}

func TestIsDateBlocked(t *testing.T) {
	today := at(t, 2026, time.March, 9, 8, 0)
	status := models.OutageStatus{
		OutToday: true,
		Upcoming: []models.OutageEntry{{Date: "2026-03-14", Reason: "Out of Town"}},
	}

	assert.True(t, IsDateBlocked(at(t, 2026, time.March, 14, 12, 0), status, today, denver))
	assert.True(t, IsDateBlocked(today, status, today, denver))
	assert.False(t, IsDateBlocked(at(t, 2026, time.March, 11, 12, 0), status, today, denver))

	calm := models.OutageStatus{}
	assert.False(t, IsDateBlocked(today, calm, today, denver))
}

func TestDayKey_NormalizesZone(t *testing.T) {
	// 23:30 Denver on March 9 is already March 10 in UTC; the business day
	// must win.
	lateNight := at(t, 2026, time.March, 9, 23, 30).UTC()
	assert.Equal(t, "2026-03-09", DayKey(lateNight, denver))
}

func TestTableFromPayload(t *testing.T) {
	table := TableFromPayload(map[string]models.OperatingHours{
		"Monday":   {Start: "05:00", End: "21:00"},
		"friday":   {Start: "04:30", End: "00:00"},
		"SATURDAY": {Start: "08:00", End: "02:00"},
		"noday":    {Start: "09:00", End: "17:00"},
	})

	require.NotNil(t, table.HoursForDay(time.Monday))
	assert.Equal(t, "21:00", table.HoursForDay(time.Monday).End)

	// Friday/Saturday midnight bleed from the feed is clamped.
	assert.Equal(t, "23:30", table.HoursForDay(time.Friday).End)
	assert.Equal(t, "23:30", table.HoursForDay(time.Saturday).End)

	// Unknown day names are dropped; unlisted days are closed.
	assert.Len(t, table, 3)
	assert.Nil(t, table.HoursForDay(time.Sunday))
}
