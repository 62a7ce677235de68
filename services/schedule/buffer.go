package schedule

import (
	"time"

	"summitos/models"
)

const (
	// BufferMinutes is the driver travel/reset margin on each side of an
	// appointment.
	BufferMinutes = 30
	// DefaultTripDurationMinutes is the nominal appointment length.
	DefaultTripDurationMinutes = 60
	// SlotIncrementMinutes is the candidate start-time grid.
	SlotIncrementMinutes = 30
)

// ComputeBuffers wraps an appointment start in its buffered interval.
func ComputeBuffers(appointmentStart time.Time, durationMinutes int) models.BufferedInterval {
	if durationMinutes <= 0 {
		durationMinutes = DefaultTripDurationMinutes
	}
	appointmentEnd := appointmentStart.Add(time.Duration(durationMinutes) * time.Minute)
	return models.BufferedInterval{
		BufferStart:      appointmentStart.Add(-BufferMinutes * time.Minute),
		AppointmentStart: appointmentStart,
		AppointmentEnd:   appointmentEnd,
		BufferEnd:        appointmentEnd.Add(BufferMinutes * time.Minute),
	}
}
