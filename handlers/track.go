package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"summitos/services/telemetry"
)

// TrackHandler exposes the privacy-filtered vehicle position.
type TrackHandler struct {
	Svc telemetry.TrackingService
}

func NewTrackHandler(svc telemetry.TrackingService) *TrackHandler {
	return &TrackHandler{Svc: svc}
}

// GetVehiclePosition returns the public view of the vehicle's position. Inside
// the home geofence the coordinates are withheld entirely.
func (h *TrackHandler) GetVehiclePosition(c *gin.Context) {
	report, err := h.Svc.PublicPosition(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Vehicle position fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "vehicle position is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, report)
}
