package middleware

import (
	"crypto/subtle"
	"net/http"

	"daily-delivery-api/config"

	"github.com/gin-gonic/gin"
)

// StaffKeyRequired gates the management surface behind the static staff
// API key. An empty STAFF_API_KEY disables the gate (local development).
func StaffKeyRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		want := config.StaffAPIKey()
		if want == "" {
			c.Next()
			return
		}
		got := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or missing API key",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
