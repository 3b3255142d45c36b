package handlers

import (
	"net/http"

	"progress-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

// SubmitAnswer records one answer and returns the updated counters.
func (h *ProgressHandler) SubmitAnswer(c *gin.Context) {
	var in service.SubmitAnswerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	result, err := h.Service.SubmitAnswer(c.Request.Context(), userID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetSessionProgress returns the per-question status view for a session the
// caller owns.
func (h *ProgressHandler) GetSessionProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	progress, err := h.Service.GetSessionProgress(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
