package booking

import (
	"context"
	"errors"
	"fmt"

	"summitos/models"
	"summitos/services/calendar"
	"summitos/services/schedule"
	"summitos/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmBooking runs the strict confirmation sequence: the slot is
// re-verified against the outage registry, operating hours, and the live
// calendar, then reserved. Any failure up to and including the reservation
// aborts the booking. The steps after it (trip log, emails) are best-effort
// and surface as warnings instead.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, sessionID string, slot models.AppointmentSlot) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateSlotSelection {
		return nil, NewValidationError("session is not ready for confirmation")
	}
	if session.Quote == nil {
		return nil, NewValidationError("session has no quote")
	}

	start := slot.Start.In(s.Location)
	if !start.After(s.clock()) {
		return nil, NewValidationError("the selected slot is in the past")
	}

	status, err := s.StatusSvc.GetOutageStatus(ctx)
	if err != nil {
		return nil, NewUpstreamError("could not check service availability", err)
	}
	if schedule.IsDateBlocked(start, status, s.clock(), s.Location) {
		return nil, NewConflictError("the selected date became unavailable")
	}
	if !s.Hours.IsWithinHours(start) {
		return nil, NewValidationError("the selected slot is outside operating hours")
	}

	interval := schedule.ComputeBuffers(start, schedule.DefaultTripDurationMinutes)

	// Re-fetch the calendar: another session may have taken the slot since it
	// was listed.
	from, to := busyWindow(start, s.Location)
	busy, err := s.Calendar.ListBusyIntervals(ctx, from, to)
	if err != nil {
		return nil, NewUpstreamError("could not load the appointment calendar", err)
	}
	for _, b := range busy {
		if schedule.Overlaps(interval.BufferStart, interval.BufferEnd, b.Start, b.End) {
			return nil, NewConflictError("the selected slot is no longer available")
		}
	}

	meta := calendar.ReservationMeta{
		CustomerName:  session.CustomerName,
		CustomerEmail: session.CustomerEmail,
		CustomerPhone: session.CustomerPhone,
		Pickup:        session.Trip.Pickup,
		Dropoff:       session.Trip.Dropoff,
		Passengers:    session.Passengers,
		Price:         fmt.Sprintf("$%.2f", session.Quote.Total),
	}
	eventID, err := s.Calendar.CreateReservation(ctx, interval, meta)
	if errors.Is(err, calendar.ErrConflict) {
		return nil, NewConflictError("the selected slot was just booked")
	}
	if err != nil {
		logger.Error("Calendar reservation failed", zap.Error(err))
		return nil, NewUpstreamError("could not reserve the appointment", err)
	}

	booking := models.Booking{
		ID:            uuid.New().String(),
		EventID:       eventID,
		CustomerName:  session.CustomerName,
		CustomerEmail: session.CustomerEmail,
		CustomerPhone: session.CustomerPhone,
		Passengers:    session.Passengers,
		Pickup:        session.Trip.Pickup,
		Dropoff:       session.Trip.Dropoff,
		Quote:         *session.Quote,
		Slot:          interval,
		CreatedAt:     s.clock(),
	}

	var warnings []string
	if s.TripRepo != nil {
		if _, err := s.TripRepo.Create(ctx, booking); err != nil {
			logger.Warn("Trip log write failed", zap.String("bookingID", booking.ID), zap.Error(err))
			warnings = append(warnings, "the trip could not be written to the trip log")
		}
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleTripReminder(booking); err != nil {
			logger.Warn("Reminder scheduling failed", zap.String("bookingID", booking.ID), zap.Error(err))
			warnings = append(warnings, "the trip reminder could not be scheduled")
		}
	}

	custErr := s.NotificationSvc.SendCustomerReceipt(ctx, booking)
	adminErr := s.NotificationSvc.SendAdminNotice(ctx, booking)
	if custErr != nil {
		logger.Warn("Customer receipt failed", zap.String("bookingID", booking.ID), zap.Error(custErr))
		warnings = append(warnings, "the confirmation email to the customer could not be sent")
	}
	if adminErr != nil {
		logger.Warn("Admin notice failed", zap.String("bookingID", booking.ID), zap.Error(adminErr))
		warnings = append(warnings, "the booking notice to the operator could not be sent")
	}
	if custErr != nil && adminErr != nil {
		warnings = append(warnings, "no confirmation emails were delivered; the reservation itself is booked")
	}

	session.State = models.StateConfirmed
	session.SelectedSlot = &models.AppointmentSlot{Start: interval.AppointmentStart, End: interval.AppointmentEnd}
	if err := s.Sessions.Save(ctx, session); err != nil {
		logger.Warn("Session finalization failed", zap.String("sessionID", sessionID), zap.Error(err))
		warnings = append(warnings, "the booking session could not be finalized")
	}

	logger.Info("Confirmed booking",
		zap.String("bookingID", booking.ID),
		zap.String("eventID", eventID),
		zap.Time("appointment", interval.AppointmentStart))

	return &models.BookingConfirmation{
		BookingID:        booking.ID,
		EventID:          eventID,
		AppointmentStart: interval.AppointmentStart,
		BufferStart:      interval.BufferStart,
		BufferEnd:        interval.BufferEnd,
		Warnings:         warnings,
	}, nil
}
