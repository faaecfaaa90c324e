// Package store holds the shared matchmaking state: queue entries keyed
// uniquely by player and match records keyed by match id. Both tables are
// multi-writer; implementations must make the candidate claim conditional so
// that two concurrent pairings can never take the same entry.
package store

import (
	"errors"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
)

// ErrClaimConflict is returned when a concurrent pairing took the candidate
// between the scan and the claim. The caller should fall back to enqueueing.
var ErrClaimConflict = errors.New("queue candidate claimed concurrently")

type Store interface {
	// Enqueue upserts the player's entry; at most one entry per player.
	Enqueue(entry model.QueueEntry) error

	// RemoveEntry deletes the player's entry. Absence is not an error.
	RemoveEntry(queue, playerID string) error

	// Entries lists the queue ordered oldest first.
	Entries(queue string) ([]model.QueueEntry, error)

	// ClaimOldestEligible atomically removes and returns the oldest entry in
	// queue whose rating is within window of rating, excluding requesterID.
	// The requester's own stale entry, if any, is removed in the same step.
	// Returns (nil, nil) when no entry is eligible.
	ClaimOldestEligible(queue, requesterID string, rating, window int) (*model.QueueEntry, error)

	// CreateMatch persists a new match and indexes it by both players.
	CreateMatch(match *model.MatchRecord) error

	// Match fetches a match by id, nil when absent.
	Match(id string) (*model.MatchRecord, error)

	// MatchForPlayer fetches the in-progress match naming the player,
	// nil when there is none.
	MatchForPlayer(playerID string) (*model.MatchRecord, error)

	// FinishMatch persists a terminal match state and drops the player index.
	FinishMatch(match *model.MatchRecord) error
}
