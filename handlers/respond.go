package handlers

import (
	"errors"
	"net/http"

	"quizhub/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// not-found to 404, forbidden to 403, validation to 400, anything else
// (store failures included) to 500. Validation responses with a form draft
// to echo are handled at the call site instead.
func respondError(c *gin.Context, err error) {
	var validation *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "fields": validation.Fields})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
