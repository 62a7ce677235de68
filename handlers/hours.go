package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summitos/services/schedule"
)

// NewHoursHandler returns the weekly operating hours table. An end of
// "00:00" means the window runs past midnight.
func NewHoursHandler(table schedule.HoursTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := make(map[string]any, len(table))
		for day, hours := range table {
			days[day.String()] = hours
		}
		c.JSON(http.StatusOK, gin.H{"hours": days})
	}
}
