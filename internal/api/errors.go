package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/backend/internal/service"
)

// writeError maps a service error to the HTTP taxonomy. Handlers that
// want a route-specific not-found message check ErrNotFound themselves
// before falling through to this. Anything unclassified is logged
// server-side and surfaces as an opaque 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, validationFailed("user already exists"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, validationFailed("invalid credentials"))
	case errors.Is(err, service.ErrAlreadyLiked), errors.Is(err, service.ErrNotLiked):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"msg": "user not authorized"})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
