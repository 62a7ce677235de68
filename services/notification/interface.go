package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"summitos/models"
	"summitos/utils"

	"go.uber.org/zap"
)

// NotificationService defines methods for sending booking emails.
type NotificationService interface {
	SendCustomerReceipt(ctx context.Context, booking models.Booking) error
	SendAdminNotice(ctx context.Context, booking models.Booking) error
	SendTripReminder(ctx context.Context, reminder models.TripReminderPayload) error
	SendOperatorDigest(ctx context.Context, day time.Time, bookings []models.Booking) error
}

// SMTPConfig holds the mail relay settings.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Config SMTPConfig

	// send is swapped out in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewDefaultNotificationService(cfg SMTPConfig) (*DefaultNotificationService, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("notification service initialization error: SMTP host or sender is empty")
	}
	return &DefaultNotificationService{
		Config: cfg,
		send:   smtp.SendMail,
	}, nil
}

// SendCustomerReceipt emails the booking confirmation to the customer.
func (s *DefaultNotificationService) SendCustomerReceipt(ctx context.Context, booking models.Booking) error {
	if booking.CustomerEmail == "" {
		return fmt.Errorf("SendCustomerReceipt: booking %s has no customer email", booking.ID)
	}

	subject := "Your trip is booked!"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour trip is confirmed.\n\nPickup: %s\nDropoff: %s\nAppointment: %s\nTotal: $%.2f\n\nBooking reference: %s\n\nWe'll see you there!\n",
		booking.CustomerName,
		booking.Pickup,
		booking.Dropoff,
		booking.Slot.AppointmentStart.Format(time.RFC1123),
		booking.Quote.Total,
		booking.ID,
	)

	if err := s.deliver(ctx, booking.CustomerEmail, subject, body); err != nil {
		return fmt.Errorf("SendCustomerReceipt: failed to send to %s: %w", booking.CustomerEmail, err)
	}
	utils.GetLogger().Info("Sent customer receipt", zap.String("bookingID", booking.ID))
	return nil
}

// SendAdminNotice emails the operator a copy of the new booking.
func (s *DefaultNotificationService) SendAdminNotice(ctx context.Context, booking models.Booking) error {
	if s.Config.AdminEmail == "" {
		return fmt.Errorf("SendAdminNotice: admin email is not configured")
	}

	subject := fmt.Sprintf("New booking: %s → %s", booking.Pickup, booking.Dropoff)
	body := fmt.Sprintf(
		"Customer: %s\nEmail: %s\nPhone: %s\nPassengers: %d\n\nPickup: %s\nDropoff: %s\nAppointment: %s\nArrive by: %s\nClear until: %s\nTotal: $%.2f\n\nBooking reference: %s\nCalendar event: %s\n",
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.Passengers,
		booking.Pickup,
		booking.Dropoff,
		booking.Slot.AppointmentStart.Format(time.RFC1123),
		booking.Slot.BufferStart.Format(time.RFC1123),
		booking.Slot.BufferEnd.Format(time.RFC1123),
		booking.Quote.Total,
		booking.ID,
		booking.EventID,
	)

	if err := s.deliver(ctx, s.Config.AdminEmail, subject, body); err != nil {
		return fmt.Errorf("SendAdminNotice: failed to send to admin: %w", err)
	}
	utils.GetLogger().Info("Sent admin booking notice", zap.String("bookingID", booking.ID))
	return nil
}

// SendTripReminder emails the customer the day before their trip.
func (s *DefaultNotificationService) SendTripReminder(ctx context.Context, reminder models.TripReminderPayload) error {
	if reminder.CustomerEmail == "" {
		return fmt.Errorf("SendTripReminder: booking %s has no customer email", reminder.BookingID)
	}

	subject := "Reminder: your trip is tomorrow"
	body := fmt.Sprintf(
		"Hi %s,\n\nA quick reminder about your upcoming trip.\n\nPickup: %s\nDropoff: %s\nAppointment: %s\n\nBooking reference: %s\n",
		reminder.CustomerName,
		reminder.Pickup,
		reminder.Dropoff,
		reminder.AppointmentStart.Format(time.RFC1123),
		reminder.BookingID,
	)

	if err := s.deliver(ctx, reminder.CustomerEmail, subject, body); err != nil {
		return fmt.Errorf("SendTripReminder: failed to send to %s: %w", reminder.CustomerEmail, err)
	}
	utils.GetLogger().Info("Sent trip reminder", zap.String("bookingID", reminder.BookingID))
	return nil
}

// SendOperatorDigest emails the operator the list of trips booked for a day.
// A day with no trips sends nothing.
func (s *DefaultNotificationService) SendOperatorDigest(ctx context.Context, day time.Time, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	if s.Config.AdminEmail == "" {
		return fmt.Errorf("SendOperatorDigest: admin email is not configured")
	}

	subject := fmt.Sprintf("Trips for %s (%d booked)", day.Format("Mon Jan 2"), len(bookings))
	var b strings.Builder
	for _, booking := range bookings {
		fmt.Fprintf(&b, "%s  %s → %s  (%s, %d pax)\n",
			booking.Slot.AppointmentStart.Format("15:04"),
			booking.Pickup,
			booking.Dropoff,
			booking.CustomerName,
			booking.Passengers)
	}

	if err := s.deliver(ctx, s.Config.AdminEmail, subject, b.String()); err != nil {
		return fmt.Errorf("SendOperatorDigest: failed to send to admin: %w", err)
	}
	utils.GetLogger().Info("Sent operator digest", zap.Int("trips", len(bookings)))
	return nil
}

func (s *DefaultNotificationService) deliver(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + s.Config.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if s.Config.Username != "" {
		auth = smtp.PlainAuth("", s.Config.Username, s.Config.Password, s.Config.Host)
	}
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	return s.send(addr, auth, s.Config.From, []string{to}, []byte(msg))
}
