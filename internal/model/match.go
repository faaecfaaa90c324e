package model

import (
	"encoding/json"
	"log"
)

// InitialFEN is the standard chess starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type MatchState string

const (
	MatchInProgress MatchState = "in_progress"
	MatchWhiteWon   MatchState = "white_won"
	MatchBlackWon   MatchState = "black_won"
	MatchDrawn      MatchState = "drawn"
	MatchAborted    MatchState = "aborted"
)

// Terminal reports whether the state is final. Terminal matches are immutable.
func (s MatchState) Terminal() bool {
	return s != MatchInProgress
}

type MatchRecord struct {
	ID         string     `json:"id"`
	WhiteID    string     `json:"whitePlayerId"`
	BlackID    string     `json:"blackPlayerId"`
	Mode       string     `json:"mode"`
	State      MatchState `json:"state"`
	BoardState string     `json:"boardState"`
	Moves      []string   `json:"moveList"`
	Quality    float64    `json:"quality,omitempty"`
	CreatedAt  int64      `json:"createdAt"`
	FinishedAt int64      `json:"finishedAt,omitempty"`
}

func (m *MatchRecord) HasPlayer(playerID string) bool {
	return m.WhiteID == playerID || m.BlackID == playerID
}

func (m *MatchRecord) Marshal() []byte {
	marshalled, err := json.Marshal(m)
	if err != nil {
		log.Println(err)
		return nil
	}

	return marshalled
}

func UnmarshalMatchRecord(data []byte) *MatchRecord {
	var m MatchRecord
	err := json.Unmarshal(data, &m)
	if err != nil {
		log.Println(err)
		return nil
	}

	return &m
}
