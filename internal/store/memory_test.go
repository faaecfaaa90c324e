package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
)

func entry(id string, rating int, at int64) model.QueueEntry {
	return model.QueueEntry{PlayerID: id, GameMode: "blitz", Rating: rating, EnqueuedAt: at}
}

func TestEnqueueUpsertsByPlayer(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Enqueue(entry("p1", 1200, 1)))
	require.NoError(t, s.Enqueue(entry("p1", 1300, 2)))

	entries, err := s.Entries("blitz")
	require.NoError(t, err)
	require.Len(t, entries, 1, "a player holds at most one entry")
	assert.Equal(t, 1300, entries[0].Rating)
}

func TestClaimPicksOldestEligible(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Enqueue(entry("p1200", 1200, 1)))
	require.NoError(t, s.Enqueue(entry("p1250", 1250, 2)))
	require.NoError(t, s.Enqueue(entry("p1800", 1800, 3)))

	claimed, err := s.ClaimOldestEligible("blitz", "requester", 1220, 200)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "p1200", claimed.PlayerID, "oldest in-window entry wins, never the 1800")

	entries, err := s.Entries("blitz")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestClaimSkipsRequesterAndRemovesStaleEntry(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Enqueue(entry("requester", 1220, 1)))
	require.NoError(t, s.Enqueue(entry("other", 1250, 2)))

	claimed, err := s.ClaimOldestEligible("blitz", "requester", 1220, 200)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "other", claimed.PlayerID)

	entries, err := s.Entries("blitz")
	require.NoError(t, err)
	assert.Empty(t, entries, "requester's stale entry is removed with the claim")
}

func TestClaimNoCandidate(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Enqueue(entry("p1800", 1800, 1)))

	claimed, err := s.ClaimOldestEligible("blitz", "requester", 1220, 200)
	require.NoError(t, err)
	assert.Nil(t, claimed)

	entries, err := s.Entries("blitz")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRemoveEntryIdempotent(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Enqueue(entry("p1", 1200, 1)))

	require.NoError(t, s.RemoveEntry("blitz", "p1"))
	require.NoError(t, s.RemoveEntry("blitz", "p1"), "removing an absent entry is a no-op")
	require.NoError(t, s.RemoveEntry("blitz", "never-queued"))
}

func TestConcurrentClaimSingleCandidate(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Enqueue(entry("candidate", 1200, 1)))

	const claimers = 10
	results := make([]*model.QueueEntry, claimers)
	var wg sync.WaitGroup
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			claimed, err := s.ClaimOldestEligible("blitz", "requester", 1210, 200)
			assert.NoError(t, err)
			results[i] = claimed
		}(i)
	}
	wg.Wait()

	won := 0
	for _, r := range results {
		if r != nil {
			won++
		}
	}
	assert.Equal(t, 1, won, "exactly one claimer may take the candidate")
}

func TestMatchLifecycle(t *testing.T) {
	s := NewMemoryStore()
	match := &model.MatchRecord{
		ID:         "match_1",
		WhiteID:    "w",
		BlackID:    "b",
		Mode:       "blitz",
		State:      model.MatchInProgress,
		BoardState: model.InitialFEN,
	}
	require.NoError(t, s.CreateMatch(match))

	forWhite, err := s.MatchForPlayer("w")
	require.NoError(t, err)
	require.NotNil(t, forWhite)
	forBlack, err := s.MatchForPlayer("b")
	require.NoError(t, err)
	require.NotNil(t, forBlack)
	assert.Equal(t, forWhite.ID, forBlack.ID)

	match.State = model.MatchWhiteWon
	require.NoError(t, s.FinishMatch(match))

	gone, err := s.MatchForPlayer("w")
	require.NoError(t, err)
	assert.Nil(t, gone, "finished matches leave the player index")

	stored, err := s.Match("match_1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.State.Terminal())
}

func TestMatchAbsent(t *testing.T) {
	s := NewMemoryStore()

	m, err := s.Match("missing")
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = s.MatchForPlayer("nobody")
	require.NoError(t, err)
	assert.Nil(t, m)
}
