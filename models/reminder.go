package models

import "time"

// TripReminderPayload is the queued task body for a next-day trip reminder.
type TripReminderPayload struct {
	BookingID        string    `json:"bookingId"`
	CustomerName     string    `json:"customerName"`
	CustomerEmail    string    `json:"customerEmail"`
	Pickup           string    `json:"pickup"`
	Dropoff          string    `json:"dropoff"`
	AppointmentStart time.Time `json:"appointmentStart"`
}
