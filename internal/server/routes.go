package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Girishnag18/crownx-arena-sub000/internal/server/handlers"
)

func RegisterRoutes(router *gin.Engine, ctx context.Context) {
	handlers.RegisterMatchmaking(router, ctx)
	handlers.RegisterMatches(router, ctx)
	handlers.RegisterTickets(router, ctx)
	handlers.RegisterHealth(router, ctx)
}
