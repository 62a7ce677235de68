package notification

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summitos/models"
)

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestService(t *testing.T, sendErr error) (*DefaultNotificationService, *capturedMail) {
	t.Helper()
	svc, err := NewDefaultNotificationService(SMTPConfig{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "mailer",
		Password:   "secret",
		From:       "bookings@example.com",
		AdminEmail: "ops@example.com",
	})
	require.NoError(t, err)

	captured := &capturedMail{}
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		captured.addr = addr
		captured.from = from
		captured.to = to
		captured.msg = string(msg)
		return sendErr
	}
	return svc, captured
}

func sampleBooking() models.Booking {
	start := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	return models.Booking{
		ID:            "bk-001",
		EventID:       "evt-abc",
		CustomerName:  "Jamie Rivera",
		CustomerEmail: "jamie@example.com",
		CustomerPhone: "555-0100",
		Passengers:    2,
		Pickup:        "123 Main St, Colorado Springs, CO",
		Dropoff:       "Denver International Airport",
		Quote:         models.PriceBreakdown{Total: 101.25},
		Slot: models.BufferedInterval{
			BufferStart:      start.Add(-30 * time.Minute),
			AppointmentStart: start,
			AppointmentEnd:   start.Add(60 * time.Minute),
			BufferEnd:        start.Add(90 * time.Minute),
		},
	}
}

func TestSendCustomerReceipt(t *testing.T) {
	svc, captured := newTestService(t, nil)

	err := svc.SendCustomerReceipt(context.Background(), sampleBooking())
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", captured.addr)
	assert.Equal(t, []string{"jamie@example.com"}, captured.to)
	assert.Contains(t, captured.msg, "Subject: Your trip is booked!")
	assert.Contains(t, captured.msg, "Total: $101.25")
	assert.Contains(t, captured.msg, "bk-001")
}

func TestSendCustomerReceiptMissingEmail(t *testing.T) {
	svc, captured := newTestService(t, nil)

	booking := sampleBooking()
	booking.CustomerEmail = ""
	err := svc.SendCustomerReceipt(context.Background(), booking)
	assert.Error(t, err)
	assert.Empty(t, captured.to)
}

func TestSendAdminNotice(t *testing.T) {
	svc, captured := newTestService(t, nil)

	err := svc.SendAdminNotice(context.Background(), sampleBooking())
	require.NoError(t, err)

	assert.Equal(t, []string{"ops@example.com"}, captured.to)
	assert.Contains(t, captured.msg, "Customer: Jamie Rivera")
	assert.Contains(t, captured.msg, "Calendar event: evt-abc")
}

func TestSendTripReminder(t *testing.T) {
	svc, captured := newTestService(t, nil)

	booking := sampleBooking()
	err := svc.SendTripReminder(context.Background(), models.TripReminderPayload{
		BookingID:        booking.ID,
		CustomerName:     booking.CustomerName,
		CustomerEmail:    booking.CustomerEmail,
		Pickup:           booking.Pickup,
		Dropoff:          booking.Dropoff,
		AppointmentStart: booking.Slot.AppointmentStart,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"jamie@example.com"}, captured.to)
	assert.Contains(t, captured.msg, "Subject: Reminder: your trip is tomorrow")
}

func TestSendOperatorDigest(t *testing.T) {
	svc, captured := newTestService(t, nil)

	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	err := svc.SendOperatorDigest(context.Background(), day, []models.Booking{sampleBooking()})
	require.NoError(t, err)

	assert.Equal(t, []string{"ops@example.com"}, captured.to)
	assert.Contains(t, captured.msg, "Trips for Sat Sep 12 (1 booked)")
	assert.Contains(t, captured.msg, "Jamie Rivera")
}

func TestSendOperatorDigestEmptyDaySkipsSend(t *testing.T) {
	svc, captured := newTestService(t, nil)

	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	err := svc.SendOperatorDigest(context.Background(), day, nil)
	require.NoError(t, err)
	assert.Empty(t, captured.to)
}

func TestSendAdminNoticeRelaysError(t *testing.T) {
	svc, _ := newTestService(t, errors.New("relay refused"))

	err := svc.SendAdminNotice(context.Background(), sampleBooking())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay refused")
}
