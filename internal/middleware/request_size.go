package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-portal/pkg/utils"
)

const DefaultMaxRequestSize = 10 << 20

// RequestSizeLimitMiddleware caps request bodies at maxSize bytes.
// Project images and resource descriptions arrive inline, so the cap
// is generous but finite.
func RequestSizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	if maxSize <= 0 {
		maxSize = DefaultMaxRequestSize
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
