package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS opens the API to all origins, matching the legacy deployment where the
// dashboard pages are served from a different host. OPTIONS preflights
// short-circuit with 200 before any routing happens.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
