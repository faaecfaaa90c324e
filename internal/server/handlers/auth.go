package handlers

import (
	"github.com/gin-gonic/gin"
)

const playerIDHeader = "X-Player-ID"

// PlayerAuth rejects requests with no caller identity before any side effect.
func PlayerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(playerIDHeader)
		if id == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "unauthenticated"})
			return
		}
		c.Set("playerID", id)
		c.Next()
	}
}

func playerID(c *gin.Context) string {
	return c.GetString("playerID")
}
