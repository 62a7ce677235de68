package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"summitos/handlers"
)

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/quote", hb.InitiateQuote)
		bookingGroup.PUT("/session/:sessionID/details", hb.SubmitDetails)
		bookingGroup.GET("/session/:sessionID/slots", hb.ListSlots)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
		bookingGroup.GET("/record/:bookingID", hb.GetBookingRecord)
	}
}

// RegisterTrackingRoutes sets up the public vehicle position endpoint.
func RegisterTrackingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/track")
	{
		api.GET("/vehicle", hb.GetVehiclePosition)
	}
}

// RegisterStatusRoutes sets up availability endpoints.
func RegisterStatusRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/status")
	{
		api.GET("/outages", hb.GetOutageStatus)
		api.GET("/hours", hb.GetHours)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Summit"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterTrackingRoutes(r, hb)
	RegisterStatusRoutes(r, hb)
	RegisterHealthRoute(r)
}
