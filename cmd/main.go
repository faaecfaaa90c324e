package main

import (
	"context"

	"github.com/Girishnag18/crownx-arena-sub000/config"
	"github.com/Girishnag18/crownx-arena-sub000/internal/logger"
	"github.com/Girishnag18/crownx-arena-sub000/internal/redis"
	"github.com/Girishnag18/crownx-arena-sub000/internal/server"
	"github.com/Girishnag18/crownx-arena-sub000/internal/wires"
)

func main() {
	cfg := config.NewConfig()
	log := logger.New()

	if cfg.Matchmaking.StoreBackend != "memory" {
		redis.Init(cfg, context.Background())
	}
	wires.Init(cfg, log)

	server := server.NewServer(cfg, log)
	server.Start()
}
