package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PreflightEchoMiddleware answers the open CORS policy: whatever headers and
// method a preflight asks for are granted. It must run before cors.New, whose
// preflight handling only overwrites the header keys it was configured with.
func PreflightEchoMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions || c.GetHeader("Origin") == "" {
			c.Next()
			return
		}

		if method := c.GetHeader("Access-Control-Request-Method"); method != "" {
			c.Header("Access-Control-Allow-Methods", method)
		}
		if headers := c.GetHeader("Access-Control-Request-Headers"); headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}

		c.Next()
	}
}
