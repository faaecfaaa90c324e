package model

import "encoding/json"

// QueueEntry is one pending matchmaking request. A player holds at most one
// live entry at a time; submitting again overwrites the old one.
type QueueEntry struct {
	PlayerID   string `json:"playerId"`
	GameMode   string `json:"gameMode"`
	Rating     int    `json:"rating"`
	Region     string `json:"region,omitempty"`
	EnqueuedAt int64  `json:"enqueuedAt"` // unix milliseconds
}

func (e *QueueEntry) MarshalBinary() ([]byte, error) {
	return json.Marshal(e)
}

func (e *QueueEntry) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, e)
}

type SearchRequest struct {
	PlayerID string `json:"playerId"`
	GameMode string `json:"game_mode"`
	Region   string `json:"region,omitempty"`
}

type SearchResult struct {
	Matched bool         `json:"matched"`
	Queued  bool         `json:"queued,omitempty"`
	Match   *MatchRecord `json:"game,omitempty"`
}
