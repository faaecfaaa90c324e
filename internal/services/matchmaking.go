package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Girishnag18/crownx-arena-sub000/config"
	"github.com/Girishnag18/crownx-arena-sub000/internal/constants"
	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
	"github.com/Girishnag18/crownx-arena-sub000/internal/rating"
	"github.com/Girishnag18/crownx-arena-sub000/internal/store"
)

var (
	ErrUnauthenticated = errors.New("caller identity not established")
	ErrInvalidMode     = errors.New("unknown game mode")
)

// RatingSource supplies a player's current rating, falling back to the
// configured default when no profile rating exists.
type RatingSource interface {
	Rating(playerID string) int
}

// MatchmakingService pairs a requesting player with a waiting one or leaves
// the request queued. Each call is stateless; all shared state lives in the
// Store.
type MatchmakingService struct {
	Store    store.Store
	Profiles RatingSource
	Config   config.MatchmakingConfig
	Logger   zerolog.Logger

	coinToss func() bool
}

func NewMatchmakingService(st store.Store, profiles RatingSource, cfg config.MatchmakingConfig, logger zerolog.Logger) *MatchmakingService {
	return &MatchmakingService{
		Store:    st,
		Profiles: profiles,
		Config:   cfg,
		Logger:   logger,
		coinToss: func() bool { return rand.Intn(2) == 0 },
	}
}

// SubmitSearch implements one pairing attempt. The candidate claim is
// conditional in the store, so losing a race degrades to the queued outcome
// instead of pairing a player twice.
func (s *MatchmakingService) SubmitSearch(req model.SearchRequest) (*model.SearchResult, error) {
	if req.PlayerID == "" {
		return nil, ErrUnauthenticated
	}
	if constants.GetQueueType(req.GameMode) == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, req.GameMode)
	}

	requesterRating := s.Profiles.Rating(req.PlayerID)

	candidate, err := s.Store.ClaimOldestEligible(req.GameMode, req.PlayerID, requesterRating, s.Config.RatingWindow)
	if errors.Is(err, store.ErrClaimConflict) {
		s.Logger.Debug().Str("player", req.PlayerID).Msg("candidate claimed concurrently, queueing requester")
		candidate = nil
	} else if err != nil {
		return nil, fmt.Errorf("searching queue: %w", err)
	}

	if candidate == nil {
		entry := model.QueueEntry{
			PlayerID:   req.PlayerID,
			GameMode:   req.GameMode,
			Rating:     requesterRating,
			Region:     req.Region,
			EnqueuedAt: time.Now().UnixMilli(),
		}
		if err := s.Store.Enqueue(entry); err != nil {
			return nil, fmt.Errorf("enqueueing requester: %w", err)
		}
		return &model.SearchResult{Matched: false, Queued: true}, nil
	}

	match := s.buildMatch(req, requesterRating, candidate)
	if err := s.Store.CreateMatch(match); err != nil {
		// Put the claimed candidate back so a storage failure leaves no
		// half-created pairing behind.
		if reErr := s.Store.Enqueue(*candidate); reErr != nil {
			s.Logger.Error().Err(reErr).Str("player", candidate.PlayerID).Msg("failed to re-queue candidate after match creation failure")
		}
		return nil, fmt.Errorf("creating match: %w", err)
	}

	s.Logger.Info().
		Str("match", match.ID).
		Str("white", match.WhiteID).
		Str("black", match.BlackID).
		Str("mode", match.Mode).
		Float64("quality", match.Quality).
		Msg("players paired")

	return &model.SearchResult{Matched: true, Match: match}, nil
}

// CancelSearch removes the player's queue entry. Cancelling an absent entry
// is a no-op.
func (s *MatchmakingService) CancelSearch(queue, playerID string) error {
	if playerID == "" {
		return ErrUnauthenticated
	}
	if constants.GetQueueType(queue) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidMode, queue)
	}

	if err := s.Store.RemoveEntry(queue, playerID); err != nil {
		return fmt.Errorf("cancelling search: %w", err)
	}
	return nil
}

// SearchStatus returns the in-progress match naming the player, nil while
// still queued.
func (s *MatchmakingService) SearchStatus(playerID string) (*model.MatchRecord, error) {
	if playerID == "" {
		return nil, ErrUnauthenticated
	}

	match, err := s.Store.MatchForPlayer(playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching match status: %w", err)
	}
	return match, nil
}

func (s *MatchmakingService) buildMatch(req model.SearchRequest, requesterRating int, candidate *model.QueueEntry) *model.MatchRecord {
	white, black := req.PlayerID, candidate.PlayerID
	if s.coinToss() {
		white, black = black, white
	}

	return &model.MatchRecord{
		ID:         "match_" + uuid.NewString(),
		WhiteID:    white,
		BlackID:    black,
		Mode:       req.GameMode,
		State:      model.MatchInProgress,
		BoardState: model.InitialFEN,
		Moves:      []string{},
		Quality:    rating.Quality(requesterRating, candidate.Rating, s.Config.QualityMode),
		CreatedAt:  time.Now().UnixMilli(),
	}
}
