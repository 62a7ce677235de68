package models

import "time"

// SessionState tracks a booking session through the quote-to-confirmation
// flow. Confirmed and Cancelled are terminal.
type SessionState string

const (
	StateQuote         SessionState = "quote"
	StateDetails       SessionState = "details"
	StateSlotSelection SessionState = "slot-selection"
	StateConfirmed     SessionState = "confirmed"
	StateCancelled     SessionState = "cancelled"
)

// BookingSession holds context between the first quote and the final
// confirmation. It lives in the session store under a TTL bounded to a
// typical trip's lifetime and is disposable, not a durable record.
type BookingSession struct {
	SessionID string       `json:"sessionId"`
	State     SessionState `json:"state"`

	Trip  TripRequest     `json:"trip"`
	Quote *PriceBreakdown `json:"quote,omitempty"`

	// Contact details collected in the Details phase.
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Passengers    int    `json:"passengers,omitempty"`

	SelectedSlot *AppointmentSlot `json:"selectedSlot,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}
