package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourtravels/services/catalog"
	"tourtravels/services/scheduling"
)

// respondError maps typed service errors to HTTP status codes: validation
// and policy failures to 400, slot collisions to 409, missing entities to
// 404, everything else to 500.
func respondError(c *gin.Context, err error) {
	var (
		validation scheduling.ValidationError
		policy     scheduling.PolicyViolation
		invalid    catalog.InvalidInputError
		notFound   catalog.NotFoundError
	)

	switch {
	case scheduling.IsSlotCollision(err):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	case errors.As(err, &validation), errors.As(err, &policy), errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
