package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
)

func RegisterHealth(router *gin.Engine, ctx context.Context) {
	router.GET("/health", healthHandler)
}

// healthHandler answers liveness probes. It says nothing about redis or the
// database; a process that can serve the route is alive.
func healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
