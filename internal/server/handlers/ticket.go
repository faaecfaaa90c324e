package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Girishnag18/crownx-arena-sub000/internal/constants"
	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
	"github.com/Girishnag18/crownx-arena-sub000/internal/wires"
)

func RegisterTickets(router *gin.Engine, ctx context.Context) {
	tickets := router.Group("/tickets")
	{
		tickets.GET("/fetch", fetchAllTickets)
		tickets.GET("/fetch/:queue", fetchTickets)
	}
}

func fetchAllTickets(c *gin.Context) {
	queues := make(map[string][]model.QueueEntry)
	for _, q := range constants.GetAllQueueTypes() {
		entries, err := wires.Instance.Store.Entries(q.String())
		if err != nil {
			abortServiceError(c, err)
			return
		}
		queues[q.String()] = entries
	}
	c.JSON(200, queues)
}

func fetchTickets(c *gin.Context) {
	queue := c.Param("queue")
	if constants.GetQueueType(queue) == "" {
		c.JSON(400, gin.H{"error": "unknown queue"})
		return
	}

	entries, err := wires.Instance.Store.Entries(queue)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(200, entries)
}
