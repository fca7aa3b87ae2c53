package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 envelope: {"ok": true} merged with the given fields.
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes {"ok": false, "error": reason} with the given status.
func Fail(c *gin.Context, statusCode int, reason string) {
	c.JSON(statusCode, gin.H{
		"ok":    false,
		"error": reason,
	})
}
