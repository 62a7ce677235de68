package booking

import (
	"context"
	"strings"
	"time"

	"summitos/models"
	"summitos/services/schedule"
	"summitos/utils"

	"go.uber.org/zap"
)

// SubmitDetails attaches customer contact details to a quoted session and
// advances it to slot selection.
func (s *DefaultBookingService) SubmitDetails(ctx context.Context, sessionID string, details CustomerDetails) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateQuote && session.State != models.StateDetails {
		return nil, NewValidationError("session is not accepting customer details")
	}

	if strings.TrimSpace(details.Name) == "" {
		return nil, NewValidationError("customer name is required")
	}
	if !strings.Contains(details.Email, "@") {
		return nil, NewValidationError("a valid email address is required")
	}
	if strings.TrimSpace(details.Phone) == "" {
		return nil, NewValidationError("a phone number is required")
	}
	if details.Passengers < 1 {
		return nil, NewValidationError("passenger count must be at least 1")
	}

	session.CustomerName = strings.TrimSpace(details.Name)
	session.CustomerEmail = strings.TrimSpace(details.Email)
	session.CustomerPhone = strings.TrimSpace(details.Phone)
	session.Passengers = details.Passengers
	session.State = models.StateDetails

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// busyWindow is the span of calendar events fetched for one service day. It
// reaches back far enough to catch a previous-day event whose buffer bleeds
// in, and forward far enough to cover the Friday spill past midnight.
func busyWindow(date time.Time, loc *time.Location) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return day.Add(-6 * time.Hour), day.Add(30 * time.Hour)
}

// ListSlots returns the open appointment starts for a date, checked against
// the outage registry and the live calendar.
func (s *DefaultBookingService) ListSlots(ctx context.Context, sessionID string, date time.Time) ([]models.AppointmentSlot, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateDetails && session.State != models.StateSlotSelection {
		return nil, NewValidationError("session is not ready for slot selection")
	}

	// Anchor the requested calendar day in the business timezone regardless
	// of the zone it arrived in.
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.Location)

	status, err := s.StatusSvc.GetOutageStatus(ctx)
	if err != nil {
		logger.Error("Outage status fetch failed", zap.Error(err))
		return nil, NewUpstreamError("could not check service availability", err)
	}
	if schedule.IsDateBlocked(date, status, s.clock(), s.Location) {
		return nil, NewValidationError("the selected date is unavailable")
	}

	from, to := busyWindow(date, s.Location)
	busy, err := s.Calendar.ListBusyIntervals(ctx, from, to)
	if err != nil {
		logger.Error("Busy interval fetch failed", zap.Error(err))
		return nil, NewUpstreamError("could not load the appointment calendar", err)
	}

	slots, err := schedule.GenerateSlots(date, s.Hours, busy)
	if err != nil {
		return nil, err
	}

	if session.State != models.StateSlotSelection {
		session.State = models.StateSlotSelection
		if err := s.Sessions.Save(ctx, session); err != nil {
			return nil, err
		}
	}
	return slots, nil
}

// GetSession returns the current session state.
func (s *DefaultBookingService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// CancelSession marks a session cancelled and drops it from the store.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.State == models.StateConfirmed {
		return NewValidationError("a confirmed booking cannot be cancelled here")
	}
	return s.Sessions.Delete(ctx, sessionID)
}
