package handlers

import (
	"net/http"

	"progress-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
}

func NewAnalyticsHandler(s *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

// GetAnalytics returns rolling performance rollups for the caller.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	timeframe := c.DefaultQuery("timeframe", "30d")

	analytics, err := h.Service.GetAnalytics(c.Request.Context(), userID, timeframe)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
