package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(subject, serviceID, start, end string) graphEvent {
	var evt graphEvent
	evt.Subject = subject
	evt.ServiceID = serviceID
	evt.Start.DateTime = start
	evt.End.DateTime = end
	return evt
}

func TestParseGraphTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	cases := []string{
		"2026-09-05T08:00:00Z",
		"2026-09-05T08:00:00.0000000",
		"2026-09-05T08:00:00",
	}
	for _, raw := range cases {
		parsed, err := parseGraphTime(raw, loc)
		require.NoError(t, err, raw)
		assert.Equal(t, 8, parsed.Hour())
	}

	naive, err := parseGraphTime("2026-09-05T08:00:00", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, naive.Location())

	_, err = parseGraphTime("not-a-time", loc)
	assert.Error(t, err)
}

func TestBuildOutageStatusIgnoresBookings(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)
	now := time.Date(2026, 9, 5, 10, 0, 0, 0, loc)

	events := []graphEvent{
		makeEvent("Private Trip", "svc-123", "2026-09-05T09:00:00", "2026-09-05T11:00:00"),
	}

	status := buildOutageStatus(events, now, loc)
	assert.False(t, status.OutToday)
	assert.Empty(t, status.Upcoming)
}

func TestBuildOutageStatusMarksToday(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)
	now := time.Date(2026, 9, 5, 10, 0, 0, 0, loc)

	events := []graphEvent{
		makeEvent("Vacation", "", "2026-09-05T00:00:00", "2026-09-08T00:00:00"),
	}

	status := buildOutageStatus(events, now, loc)
	assert.True(t, status.OutToday)
	assert.Equal(t, "2026-09-08", status.ReturnDate)
	assert.Contains(t, status.Message, "2026-09-08")
	require.Len(t, status.Upcoming, 3)
	assert.Equal(t, "2026-09-05", status.Upcoming[0].Date)
	assert.Equal(t, "2026-09-07", status.Upcoming[2].Date)
}

func TestBuildOutageStatusFutureOnly(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)
	now := time.Date(2026, 9, 5, 10, 0, 0, 0, loc)

	events := []graphEvent{
		makeEvent("Maintenance", "", "2026-09-12T00:00:00", "2026-09-13T00:00:00"),
	}

	status := buildOutageStatus(events, now, loc)
	assert.False(t, status.OutToday)
	assert.Empty(t, status.Message)
	require.Len(t, status.Upcoming, 1)
	assert.Equal(t, "2026-09-12", status.Upcoming[0].Date)
	assert.Equal(t, "Maintenance", status.Upcoming[0].Reason)
}
