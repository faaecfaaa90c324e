package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
	"github.com/Girishnag18/crownx-arena-sub000/internal/rating"
	"github.com/Girishnag18/crownx-arena-sub000/internal/repository"
	"github.com/Girishnag18/crownx-arena-sub000/internal/store"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchFinished = errors.New("match already finished")
	ErrUnknownWinner = errors.New("winner must be white, black or draw")
)

// RatingService finalizes matches and applies Elo updates to both players.
// History is optional; when nil, results are computed but not archived.
type RatingService struct {
	Store    store.Store
	Profiles RatingSource
	Table    rating.TierTable
	KFactor  int
	History  *repository.HistoryRepository
	Logger   zerolog.Logger
}

func NewRatingService(st store.Store, profiles RatingSource, table rating.TierTable, kFactor int, history *repository.HistoryRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{
		Store:    st,
		Profiles: profiles,
		Table:    table,
		KFactor:  kFactor,
		History:  history,
		Logger:   logger,
	}
}

// RecordResult moves an in-progress match to its terminal state exactly once
// and returns both players' rating changes.
func (s *RatingService) RecordResult(matchID string, winner model.Winner) (*model.MatchResult, error) {
	whiteOutcome, blackOutcome, ok := winner.Outcomes()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWinner, winner)
	}

	match, err := s.Store.Match(matchID)
	if err != nil {
		return nil, fmt.Errorf("fetching match: %w", err)
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if match.State.Terminal() {
		return nil, ErrMatchFinished
	}

	whiteRating := s.Profiles.Rating(match.WhiteID)
	blackRating := s.Profiles.Rating(match.BlackID)

	newWhite, err := rating.Update(whiteRating, blackRating, whiteOutcome.Score(), s.KFactor)
	if err != nil {
		return nil, fmt.Errorf("updating white rating: %w", err)
	}
	newBlack, err := rating.Update(blackRating, whiteRating, blackOutcome.Score(), s.KFactor)
	if err != nil {
		return nil, fmt.Errorf("updating black rating: %w", err)
	}

	match.State = winner.MatchState()
	match.FinishedAt = time.Now().UnixMilli()
	if err := s.Store.FinishMatch(match); err != nil {
		return nil, fmt.Errorf("finishing match: %w", err)
	}

	result := &model.MatchResult{
		MatchID: match.ID,
		Winner:  winner,
		White: model.PlayerResult{
			PlayerID:  match.WhiteID,
			OldRating: whiteRating,
			NewRating: newWhite,
			Tier:      s.Table.TierFor(newWhite),
		},
		Black: model.PlayerResult{
			PlayerID:  match.BlackID,
			OldRating: blackRating,
			NewRating: newBlack,
			Tier:      s.Table.TierFor(newBlack),
		},
	}

	s.archive(match, result, whiteOutcome, blackOutcome)

	s.Logger.Info().
		Str("match", match.ID).
		Str("winner", string(winner)).
		Int("white_rating", newWhite).
		Int("black_rating", newBlack).
		Msg("match result recorded")

	return result, nil
}

// PlayerRating returns the current rating and tier label.
func (s *RatingService) PlayerRating(playerID string) (int, string) {
	r := s.Profiles.Rating(playerID)
	return r, s.Table.TierFor(r)
}

func (s *RatingService) archive(match *model.MatchRecord, result *model.MatchResult, whiteOutcome, blackOutcome model.Outcome) {
	if s.History == nil {
		return
	}

	err := s.History.ArchiveMatch(&repository.MatchArchive{
		ID:         match.ID,
		WhiteID:    match.WhiteID,
		BlackID:    match.BlackID,
		Mode:       match.Mode,
		Result:     string(match.State),
		Quality:    match.Quality,
		MoveCount:  len(match.Moves),
		FinishedAt: time.UnixMilli(match.FinishedAt),
	})
	if err != nil {
		s.Logger.Error().Err(err).Str("match", match.ID).Msg("error archiving match")
	}

	changes := []repository.RatingHistory{
		{PlayerID: result.White.PlayerID, MatchID: match.ID, OldRating: result.White.OldRating, NewRating: result.White.NewRating, Tier: result.White.Tier, Outcome: string(whiteOutcome)},
		{PlayerID: result.Black.PlayerID, MatchID: match.ID, OldRating: result.Black.OldRating, NewRating: result.Black.NewRating, Tier: result.Black.Tier, Outcome: string(blackOutcome)},
	}
	for i := range changes {
		if err := s.History.SaveRatingChange(&changes[i]); err != nil {
			s.Logger.Error().Err(err).Str("player", changes[i].PlayerID).Msg("error saving rating change")
		}
	}
}
