package booking

import (
	"context"
	"time"

	tripsRepo "summitos/database/repository/trips"
	"summitos/models"
	"summitos/services/calendar"
	"summitos/services/distance"
	"summitos/services/notification"
	"summitos/services/schedule"
)

// BookingService defines the interface for managing a stateful booking session
// from first quote through calendar confirmation.
type BookingService interface {
	InitiateQuote(ctx context.Context, req models.TripRequest) (*models.BookingSession, error)
	SubmitDetails(ctx context.Context, sessionID string, details CustomerDetails) (*models.BookingSession, error)
	ListSlots(ctx context.Context, sessionID string, date time.Time) ([]models.AppointmentSlot, error)
	ConfirmBooking(ctx context.Context, sessionID string, slot models.AppointmentSlot) (*models.BookingConfirmation, error)
	CancelSession(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
}

// CustomerDetails is the contact block collected after a quote is accepted.
type CustomerDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Passengers int    `json:"passengers"`
}

// ReminderScheduler enqueues the next-day trip reminder for a booking.
type ReminderScheduler interface {
	ScheduleTripReminder(booking models.Booking) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Resolver        distance.Resolver
	Calendar        calendar.Calendar
	StatusSvc       calendar.StatusProvider
	NotificationSvc notification.NotificationService
	Sessions        SessionStore
	TripRepo        tripsRepo.TripLogRepository
	Reminders       ReminderScheduler

	Hours    schedule.HoursTable
	Location *time.Location

	// Distance aggregation knobs.
	RoundTripFactor float64
	StopDetourMiles float64

	// now is swapped out in tests.
	now func() time.Time
}

func (s *DefaultBookingService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
