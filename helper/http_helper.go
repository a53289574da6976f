package helper

import (
	"net/http"

	"blog-api/models"

	"github.com/gin-gonic/gin"
)

// GetStatusCode maps a service-layer error to its HTTP status.
func GetStatusCode(err error) int {
	switch err.(type) {
	case models.ErrorValidation:
		return http.StatusBadRequest
	case models.ErrorNotFound:
		return http.StatusNotFound
	case models.ErrorConflict:
		// The API's legacy contract reports conflicts as 400, not 409.
		return http.StatusBadRequest
	case models.ErrorForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the flat error body every failure shares.
func SendError(c *gin.Context, err error) {
	c.JSON(GetStatusCode(err), gin.H{"error": err.Error()})
}
