package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	InitiateQuote    gin.HandlerFunc
	SubmitDetails    gin.HandlerFunc
	ListSlots        gin.HandlerFunc
	ConfirmBooking   gin.HandlerFunc
	CancelSession    gin.HandlerFunc
	GetSession       gin.HandlerFunc
	GetBookingRecord gin.HandlerFunc

	// Tracking endpoints
	GetVehiclePosition gin.HandlerFunc

	// Status endpoints
	GetOutageStatus gin.HandlerFunc
	GetHours        gin.HandlerFunc
}
