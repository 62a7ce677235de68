package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"summitos/models"
	"summitos/services/calendar"
	"summitos/utils"
)

// StatusHandler serves the outage registry. It prefers the snapshot the
// refresh worker keeps warm and falls back to a live calendar poll.
type StatusHandler struct {
	StatusSvc calendar.StatusProvider
	Cache     *redis.Client
}

func NewStatusHandler(statusSvc calendar.StatusProvider, cache *redis.Client) *StatusHandler {
	return &StatusHandler{StatusSvc: statusSvc, Cache: cache}
}

// GetOutageStatus returns today's availability plus upcoming blocked dates.
func (h *StatusHandler) GetOutageStatus(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Cache != nil {
		cached, err := h.Cache.Get(ctx, utils.OutageCacheKey).Result()
		if err == nil {
			var status models.OutageStatus
			if jsonErr := json.Unmarshal([]byte(cached), &status); jsonErr == nil {
				c.JSON(http.StatusOK, status)
				return
			}
		} else if err != redis.Nil {
			getLogger(c).Warn("Outage snapshot read failed", zap.Error(err))
		}
	}

	status, err := h.StatusSvc.GetOutageStatus(ctx)
	if err != nil {
		getLogger(c).Error("Outage status fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "availability is temporarily unknown"})
		return
	}
	c.JSON(http.StatusOK, status)
}
