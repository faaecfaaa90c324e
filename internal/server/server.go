package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Girishnag18/crownx-arena-sub000/config"
)

type Server struct {
	config *config.Config
	logger zerolog.Logger
}

func NewServer(config *config.Config, logger zerolog.Logger) *Server {
	return &Server{
		config: config,
		logger: logger,
	}
}

func (server *Server) Start() {
	r := gin.Default()
	r.Use(CORSMiddleware())
	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	r.Use(gin.Recovery())

	RegisterRoutes(r, context.Background())

	server.logger.Info().Str("port", server.config.Server.Port).Msg("starting server")
	if err := r.Run(":" + server.config.Server.Port); err != nil {
		server.logger.Fatal().Err(err).Msg("could not start the server")
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, X-Player-ID")
		c.Writer.Header().Set("Access-Allow-Methods", "POST, GET, DELETE")

		c.Next()
	}
}
