package handlers

import (
	"errors"
	"log"
	"net/http"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/platform/obs"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// writeServiceError maps domain sentinels to client errors and hides
// everything else behind a logged 500.
func writeServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidBinData):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid bin data format", "detail": err.Error()})
	case errors.Is(err, domain.ErrBinNotFound):
		writeError(c, http.StatusNotFound, "bin not found")
	case errors.Is(err, domain.ErrInvalidMode):
		writeError(c, http.StatusBadRequest, "mode must be FIXED or OPTIMIZED")
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(c, http.StatusBadRequest, "status must be CLEARED, BLOCKED or FULL")
	default:
		log.Printf("req_id=%s op=%s failed: %v", obs.RequestID(c.Request.Context()), op, err)
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
