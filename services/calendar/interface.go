package calendar

import (
	"context"
	"errors"
	"time"

	"summitos/models"
)

// ErrConflict means the calendar rejected a reservation because the span is
// already taken. The calendar's answer is authoritative; callers must
// re-list and re-select rather than retry the same span.
var ErrConflict = errors.New("reservation span is no longer free")

// ReservationMeta carries trip details into the calendar event body.
type ReservationMeta struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Pickup        string
	Dropoff       string
	Passengers    int
	Price         string
}

// Calendar is the single source of truth for slot occupancy.
type Calendar interface {
	// ListBusyIntervals returns existing reservation spans inside the range.
	ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error)
	// CreateReservation books the full buffered span and returns the event ID.
	CreateReservation(ctx context.Context, interval models.BufferedInterval, meta ReservationMeta) (string, error)
}

// StatusProvider reports operator availability (time off / outages).
type StatusProvider interface {
	GetOutageStatus(ctx context.Context) (models.OutageStatus, error)
}
