package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
	"github.com/Girishnag18/crownx-arena-sub000/internal/wires"
)

func RegisterMatches(router *gin.Engine, ctx context.Context) {
	matches := router.Group("/matches", PlayerAuth())
	{
		matches.GET("/:id", getMatch)
		matches.POST("/:id/result", recordResult)
	}

	router.GET("/players/:id/rating", getPlayerRating)
	router.GET("/players/:id/history", getPlayerHistory)
}

// getMatch hides matches from non-participants; an outsider cannot tell a
// foreign match id from a missing one.
func getMatch(c *gin.Context) {
	match, err := wires.Instance.Store.Match(c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if match == nil || !match.HasPlayer(playerID(c)) {
		c.JSON(404, gin.H{"error": "match not found"})
		return
	}
	c.JSON(200, match)
}

type resultBody struct {
	Winner string `json:"winner"`
}

func recordResult(c *gin.Context) {
	var body resultBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "invalid request body"})
		return
	}

	result, err := wires.Instance.RatingService.RecordResult(c.Param("id"), model.Winner(body.Winner))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(200, result)
}

func getPlayerRating(c *gin.Context) {
	playerRating, tier := wires.Instance.RatingService.PlayerRating(c.Param("id"))
	c.JSON(200, gin.H{
		"playerId": c.Param("id"),
		"rating":   playerRating,
		"tier":     tier,
	})
}

func getPlayerHistory(c *gin.Context) {
	if wires.Instance.History == nil {
		c.JSON(404, gin.H{"error": "match history not configured"})
		return
	}

	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	history, err := wires.Instance.History.PlayerHistory(c.Param("id"), limit)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(200, history)
}
