package httpserver

import (
	"errors"
	"net/http"

	"buvette-pos/internal/domain"

	"github.com/gin-gonic/gin"
)

// writeError maps a service error onto the API error contract. Storage
// failures are deliberately opaque; the cause is already logged by the
// repository.
func writeError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "not_found"})
	case errors.Is(err, domain.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "conflict"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure", "code": "storage"})
	}
}

func writeBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body", "code": "validation"})
}
