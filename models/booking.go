package models

import "time"

// Booking is the durable record of a confirmed trip, written best-effort to
// the trip log after the calendar reservation succeeds.
type Booking struct {
	ID            string           `bson:"id" json:"id"`
	EventID       string           `bson:"event_id" json:"eventId"`
	CustomerName  string           `bson:"customer_name" json:"customerName"`
	CustomerEmail string           `bson:"customer_email" json:"customerEmail"`
	CustomerPhone string           `bson:"customer_phone" json:"customerPhone"`
	Passengers    int              `bson:"passengers" json:"passengers"`
	Pickup        string           `bson:"pickup" json:"pickup"`
	Dropoff       string           `bson:"dropoff" json:"dropoff"`
	Quote         PriceBreakdown   `bson:"quote" json:"quote"`
	Slot          BufferedInterval `bson:"slot" json:"slot"`
	CreatedAt     time.Time        `bson:"created_at" json:"createdAt"`
}

// BookingConfirmation is returned to the caller after a booking reaches its
// terminal state. Warnings list non-critical steps that failed; they never
// roll back the confirmation.
type BookingConfirmation struct {
	BookingID        string    `json:"bookingId"`
	EventID          string    `json:"eventId"`
	AppointmentStart time.Time `json:"appointmentStart"`
	BufferStart      time.Time `json:"bufferStart"`
	BufferEnd        time.Time `json:"bufferEnd"`
	Warnings         []string  `json:"warnings,omitempty"`
}
