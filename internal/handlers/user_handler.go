package handlers

import (
	"net/http"

	"progress-service/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// SetExperienceLevel updates the caller's experience level and returns the
// sanitized user projection.
func (h *UserHandler) SetExperienceLevel(c *gin.Context) {
	var req struct {
		ExperienceLevel string `json:"experienceLevel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	user, err := h.Service.SetExperienceLevel(c.Request.Context(), userID, req.ExperienceLevel)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
