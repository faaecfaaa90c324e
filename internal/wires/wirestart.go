package wires

import (
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"

	"github.com/Girishnag18/crownx-arena-sub000/config"
	"github.com/Girishnag18/crownx-arena-sub000/internal/rating"
	redisinit "github.com/Girishnag18/crownx-arena-sub000/internal/redis"
	"github.com/Girishnag18/crownx-arena-sub000/internal/repository"
	"github.com/Girishnag18/crownx-arena-sub000/internal/services"
	"github.com/Girishnag18/crownx-arena-sub000/internal/store"
	"github.com/Girishnag18/crownx-arena-sub000/pkg/external"
)

type Wires struct {
	Store              store.Store
	History            *repository.HistoryRepository
	MatchmakingService *services.MatchmakingService
	RatingService      *services.RatingService
}

var Instance *Wires

func Init(cfg *config.Config, logger zerolog.Logger) {
	var st store.Store
	if cfg.Matchmaking.StoreBackend == "memory" {
		st = store.NewMemoryStore()
	} else {
		st = store.NewRedisStore(redisinit.RedisClient)
	}

	profiles := external.NewProfileClient(cfg.Profile, cfg.Matchmaking.DefaultRating, logger)

	var history *repository.HistoryRepository
	if cfg.Database.DSN != "" {
		var err error
		history, err = repository.NewHistoryRepository(postgres.Open(cfg.Database.DSN))
		if err != nil {
			logger.Fatal().Err(err).Msg("could not open history database")
		}
	}

	table := rating.TableByName(cfg.Matchmaking.TierTable)

	Instance = &Wires{
		Store:              st,
		History:            history,
		MatchmakingService: services.NewMatchmakingService(st, profiles, cfg.Matchmaking, logger),
		RatingService:      services.NewRatingService(st, profiles, table, cfg.Matchmaking.KFactor, history, logger),
	}
}
