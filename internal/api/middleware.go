package api

import (
	"log"
	"time"
	"waste-route-service/internal/platform/obs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware propagates the caller's request id, or assigns one, so
// request and operation log lines can be correlated.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware logs end-to-end request duration and response size for basic observability.
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// gin reports -1 when nothing was written
		bytes := c.Writer.Size()
		if bytes < 0 {
			bytes = 0
		}

		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			obs.RequestID(c.Request.Context()), c.Request.Method, c.Request.URL.RequestURI(),
			c.Writer.Status(), bytes, time.Since(start).Milliseconds(),
		)
	}
}
