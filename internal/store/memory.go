package store

import (
	"sort"
	"sync"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
)

// MemoryStore is a single-node Store used for tests and redis-less deploys.
// One mutex covers every operation, so the scan-and-claim is atomic by
// construction.
type MemoryStore struct {
	mu          sync.Mutex
	queues      map[string]map[string]memoryEntry
	matches     map[string]*model.MatchRecord
	playerMatch map[string]string
	seq         int64
}

type memoryEntry struct {
	entry model.QueueEntry
	seq   int64 // insertion order, tie-break for equal timestamps
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		queues:      make(map[string]map[string]memoryEntry),
		matches:     make(map[string]*model.MatchRecord),
		playerMatch: make(map[string]string),
	}
}

func (s *MemoryStore) Enqueue(entry model.QueueEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.queues[entry.GameMode]
	if q == nil {
		q = make(map[string]memoryEntry)
		s.queues[entry.GameMode] = q
	}

	s.seq++
	q[entry.PlayerID] = memoryEntry{entry: entry, seq: s.seq}
	return nil
}

func (s *MemoryStore) RemoveEntry(queue, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.queues[queue], playerID)
	return nil
}

func (s *MemoryStore) Entries(queue string) ([]model.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ordered := s.ordered(queue)
	entries := make([]model.QueueEntry, 0, len(ordered))
	for _, e := range ordered {
		entries = append(entries, e.entry)
	}
	return entries, nil
}

func (s *MemoryStore) ClaimOldestEligible(queue, requesterID string, rating, window int) (*model.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.ordered(queue) {
		if e.entry.PlayerID == requesterID {
			continue
		}
		if abs(e.entry.Rating-rating) > window {
			continue
		}

		delete(s.queues[queue], e.entry.PlayerID)
		delete(s.queues[queue], requesterID)
		claimed := e.entry
		return &claimed, nil
	}
	return nil, nil
}

func (s *MemoryStore) CreateMatch(match *model.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *match
	s.matches[match.ID] = &copied
	s.playerMatch[match.WhiteID] = match.ID
	s.playerMatch[match.BlackID] = match.ID
	return nil
}

func (s *MemoryStore) Match(id string) (*model.MatchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (s *MemoryStore) MatchForPlayer(playerID string) (*model.MatchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.playerMatch[playerID]
	if !ok {
		return nil, nil
	}
	m, ok := s.matches[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (s *MemoryStore) FinishMatch(match *model.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *match
	s.matches[match.ID] = &copied
	delete(s.playerMatch, match.WhiteID)
	delete(s.playerMatch, match.BlackID)
	return nil
}

// ordered returns the queue oldest first. Callers must hold the mutex.
func (s *MemoryStore) ordered(queue string) []memoryEntry {
	q := s.queues[queue]
	ordered := make([]memoryEntry, 0, len(q))
	for _, e := range q {
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].entry.EnqueuedAt != ordered[j].entry.EnqueuedAt {
			return ordered[i].entry.EnqueuedAt < ordered[j].entry.EnqueuedAt
		}
		return ordered[i].seq < ordered[j].seq
	})
	return ordered
}
