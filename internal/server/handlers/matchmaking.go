package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
	ws "github.com/Girishnag18/crownx-arena-sub000/internal/server/websockets"
	"github.com/Girishnag18/crownx-arena-sub000/internal/services"
	"github.com/Girishnag18/crownx-arena-sub000/internal/wires"
)

func RegisterMatchmaking(router *gin.Engine, ctx context.Context) {
	matchmaking := router.Group("/matchmaking", PlayerAuth())
	{
		matchmaking.POST("/search", submitSearch)
		matchmaking.DELETE("/search/:queue", cancelSearch)
		matchmaking.GET("/status", searchStatus)
	}

	router.GET("/ws/:queue/:id", wsGet)
}

type searchBody struct {
	GameMode string `json:"game_mode"`
	Region   string `json:"region"`
}

func submitSearch(c *gin.Context) {
	var body searchBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "invalid request body"})
		return
	}

	result, err := wires.Instance.MatchmakingService.SubmitSearch(model.SearchRequest{
		PlayerID: playerID(c),
		GameMode: body.GameMode,
		Region:   body.Region,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}

	if result.Matched {
		ws.SendMatchFoundToPlayers(result.Match)
	}
	c.JSON(200, result)
}

func cancelSearch(c *gin.Context) {
	err := wires.Instance.MatchmakingService.CancelSearch(c.Param("queue"), playerID(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	// A live websocket session learns about the removal right away.
	ws.SendMessageToUser(playerID(c), ws.Removed, "Removed from queue")
	c.Status(204)
}

func searchStatus(c *gin.Context) {
	match, err := wires.Instance.MatchmakingService.SearchStatus(playerID(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	if match == nil {
		c.JSON(200, model.SearchResult{Matched: false, Queued: true})
		return
	}
	c.JSON(200, model.SearchResult{Matched: true, Match: match})
}

func wsGet(c *gin.Context) {
	queue := c.Param("queue")
	id := c.Param("id")

	if queue == "" || id == "" {
		c.JSON(400, gin.H{"error": "missing required parameters"})
		return
	}

	ws.StartQueueWebSocket(queue, id, c)
}

// abortServiceError maps the service error taxonomy to HTTP statuses.
// Storage failures are retryable; the client may simply search again.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		c.JSON(401, gin.H{"error": "unauthenticated"})
	case errors.Is(err, services.ErrInvalidMode), errors.Is(err, services.ErrUnknownWinner):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMatchNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMatchFinished):
		c.JSON(409, gin.H{"error": err.Error()})
	default:
		c.JSON(503, gin.H{"error": err.Error(), "retryable": true})
	}
}
