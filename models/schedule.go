package models

import "time"

// OperatingHours is a daily service window in "HH:MM" business-local time.
// An End of "00:00" means the window runs past midnight into the next
// calendar day.
type OperatingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AppointmentSlot is a bookable start time. The display window is always 60
// minutes; conflict checks use the wider BufferedInterval instead.
type AppointmentSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BufferedInterval wraps an appointment with the driver travel/reset margin
// on both sides. The calendar reservation spans BufferStart..BufferEnd.
type BufferedInterval struct {
	BufferStart      time.Time `bson:"buffer_start" json:"bufferStart"`
	AppointmentStart time.Time `bson:"appointment_start" json:"appointmentStart"`
	AppointmentEnd   time.Time `bson:"appointment_end" json:"appointmentEnd"`
	BufferEnd        time.Time `bson:"buffer_end" json:"bufferEnd"`
}

// BusyInterval is an existing reservation span from the calendar provider.
// It is opaque beyond overlap testing.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
