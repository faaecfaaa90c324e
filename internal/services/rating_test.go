package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
	"github.com/Girishnag18/crownx-arena-sub000/internal/rating"
	"github.com/Girishnag18/crownx-arena-sub000/internal/store"
)

func newRatingService(st store.Store, ratings stubRatings) *RatingService {
	return NewRatingService(st, ratings, rating.ClassicTable, 24, nil, zerolog.Nop())
}

func inProgressMatch(st store.Store, t *testing.T) *model.MatchRecord {
	t.Helper()
	match := &model.MatchRecord{
		ID:         "match_test",
		WhiteID:    "w",
		BlackID:    "b",
		Mode:       "blitz",
		State:      model.MatchInProgress,
		BoardState: model.InitialFEN,
	}
	require.NoError(t, st.CreateMatch(match))
	return match
}

func TestRecordResultWhiteWins(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newRatingService(st, stubRatings{"w": 1500, "b": 1500})
	inProgressMatch(st, t)

	result, err := svc.RecordResult("match_test", model.WinnerWhite)
	require.NoError(t, err)

	assert.Equal(t, 1512, result.White.NewRating)
	assert.Equal(t, 1488, result.Black.NewRating)
	assert.Equal(t, "Silver", result.White.Tier)
	assert.Equal(t, "Silver", result.Black.Tier)

	stored, err := st.Match("match_test")
	require.NoError(t, err)
	assert.Equal(t, model.MatchWhiteWon, stored.State)
	assert.NotZero(t, stored.FinishedAt)
}

func TestRecordResultDrawKeepsEqualRatings(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newRatingService(st, stubRatings{"w": 1600, "b": 1600})
	inProgressMatch(st, t)

	result, err := svc.RecordResult("match_test", model.WinnerDraw)
	require.NoError(t, err)

	assert.Equal(t, 1600, result.White.NewRating)
	assert.Equal(t, 1600, result.Black.NewRating)

	stored, err := st.Match("match_test")
	require.NoError(t, err)
	assert.Equal(t, model.MatchDrawn, stored.State)
}

func TestRecordResultTerminalMatchesAreImmutable(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newRatingService(st, stubRatings{})
	inProgressMatch(st, t)

	_, err := svc.RecordResult("match_test", model.WinnerBlack)
	require.NoError(t, err)

	_, err = svc.RecordResult("match_test", model.WinnerWhite)
	assert.ErrorIs(t, err, ErrMatchFinished)
}

func TestRecordResultValidation(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newRatingService(st, stubRatings{})

	_, err := svc.RecordResult("missing", model.WinnerWhite)
	assert.ErrorIs(t, err, ErrMatchNotFound)

	inProgressMatch(st, t)
	_, err = svc.RecordResult("match_test", model.Winner("stalemate"))
	assert.ErrorIs(t, err, ErrUnknownWinner)
}

func TestPlayerRating(t *testing.T) {
	svc := newRatingService(store.NewMemoryStore(), stubRatings{"p1": 2250})

	r, tier := svc.PlayerRating("p1")
	assert.Equal(t, 2250, r)
	assert.Equal(t, "Diamond", tier)

	r, tier = svc.PlayerRating("unknown")
	assert.Equal(t, 1200, r, "missing profile rating defaults")
	assert.Equal(t, "Bronze", tier)
}
