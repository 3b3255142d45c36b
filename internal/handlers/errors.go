package handlers

import (
	"errors"
	"net/http"

	"progress-service/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var (
		validationErr    *service.ValidationError
		notFoundErr      *service.NotFoundError
		authorizationErr *service.AuthorizationError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &authorizationErr):
		c.JSON(http.StatusForbidden, gin.H{"error": authorizationErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	_ = c.Error(err)
}
