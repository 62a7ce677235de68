package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	tripsRepo "summitos/database/repository/trips"
	"summitos/models"
	"summitos/services/booking"
)

// BookingHandler exposes the quote-to-confirmation flow over HTTP.
type BookingHandler struct {
	Svc      booking.BookingService
	TripRepo tripsRepo.TripLogRepository
}

func NewBookingHandler(svc booking.BookingService, tripRepo tripsRepo.TripLogRepository) *BookingHandler {
	return &BookingHandler{Svc: svc, TripRepo: tripRepo}
}

// respondBookingError maps the service error taxonomy onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	var cerr *booking.ConflictError
	var uerr *booking.UpstreamError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.As(err, &cerr):
		c.JSON(http.StatusConflict, gin.H{"error": cerr.Message})
	case errors.As(err, &uerr):
		getLogger(c).Error("Upstream dependency failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": uerr.Message})
	default:
		getLogger(c).Error("Booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// InitiateQuote prices a trip and opens a booking session.
func (h *BookingHandler) InitiateQuote(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.InitiateQuote(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.SessionID,
		"quote":     session.Quote,
	})
}

// SubmitDetails attaches customer contact details to a session.
func (h *BookingHandler) SubmitDetails(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var details booking.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.SubmitDetails(c.Request.Context(), sessionID, details)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.SessionID,
		"state":     session.State,
	})
}

// ListSlots returns the open appointment starts for a date.
func (h *BookingHandler) ListSlots(c *gin.Context) {
	sessionID := c.Param("sessionID")
	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	slots, err := h.Svc.ListSlots(c.Request.Context(), sessionID, date)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ConfirmBooking reserves the selected slot.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var slot models.AppointmentSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := h.Svc.ConfirmBooking(c.Request.Context(), sessionID, slot)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

// CancelSession abandons an in-flight session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.CancelSession(c.Request.Context(), sessionID); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetBookingRecord looks up a confirmed trip by its booking reference.
func (h *BookingHandler) GetBookingRecord(c *gin.Context) {
	bookingID := c.Param("bookingID")
	record, err := h.TripRepo.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Svc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
