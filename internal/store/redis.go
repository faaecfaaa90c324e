package store

import (
	"errors"
	"fmt"

	"github.com/go-redis/redis"

	"github.com/Girishnag18/crownx-arena-sub000/internal/constants"
	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
)

const playerMatchIndex = "player_match"

var errNoCandidate = errors.New("no eligible candidate")

// RedisStore keeps each queue as a sorted set scored by enqueue time plus a
// hash of entry payloads, so the oldest-first scan is a plain range read.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Enqueue(entry model.QueueEntry) error {
	queueKey := constants.GetIndexNameStr(entry.GameMode)
	entriesKey := constants.GetEntriesName(entry.GameMode)

	_, err := s.Client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.ZAdd(queueKey, redis.Z{Score: float64(entry.EnqueuedAt), Member: entry.PlayerID})
		pipe.HSet(entriesKey, entry.PlayerID, &entry)
		return nil
	})
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", entry.PlayerID, err)
	}
	return nil
}

func (s *RedisStore) RemoveEntry(queue, playerID string) error {
	_, err := s.Client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.ZRem(constants.GetIndexNameStr(queue), playerID)
		pipe.HDel(constants.GetEntriesName(queue), playerID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove entry %s: %w", playerID, err)
	}
	return nil
}

func (s *RedisStore) Entries(queue string) ([]model.QueueEntry, error) {
	ids, err := s.Client.ZRange(constants.GetIndexNameStr(queue), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list queue %s: %w", queue, err)
	}

	entries := make([]model.QueueEntry, 0, len(ids))
	for _, id := range ids {
		raw, err := s.Client.HGet(constants.GetEntriesName(queue), id).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fetch entry %s: %w", id, err)
		}

		var entry model.QueueEntry
		if err := entry.UnmarshalBinary([]byte(raw)); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ClaimOldestEligible runs the scan and the double delete under WATCH so a
// concurrent claim of either entry aborts the transaction instead of pairing
// one player twice.
func (s *RedisStore) ClaimOldestEligible(queue, requesterID string, rating, window int) (*model.QueueEntry, error) {
	queueKey := constants.GetIndexNameStr(queue)
	entriesKey := constants.GetEntriesName(queue)

	var claimed *model.QueueEntry
	err := s.Client.Watch(func(tx *redis.Tx) error {
		ids, err := tx.ZRange(queueKey, 0, -1).Result()
		if err != nil {
			return err
		}

		var candidate *model.QueueEntry
		for _, id := range ids {
			if id == requesterID {
				continue
			}

			raw, err := tx.HGet(entriesKey, id).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				return err
			}

			var entry model.QueueEntry
			if err := entry.UnmarshalBinary([]byte(raw)); err != nil {
				continue
			}
			if abs(entry.Rating-rating) <= window {
				candidate = &entry
				break
			}
		}

		if candidate == nil {
			return errNoCandidate
		}

		_, err = tx.TxPipelined(func(pipe redis.Pipeliner) error {
			pipe.ZRem(queueKey, candidate.PlayerID, requesterID)
			pipe.HDel(entriesKey, candidate.PlayerID, requesterID)
			return nil
		})
		if err != nil {
			return err
		}

		claimed = candidate
		return nil
	}, queueKey, entriesKey)

	if err == errNoCandidate {
		return nil, nil
	}
	if err == redis.TxFailedErr {
		return nil, ErrClaimConflict
	}
	if err != nil {
		return nil, fmt.Errorf("claim candidate: %w", err)
	}
	return claimed, nil
}

func (s *RedisStore) CreateMatch(match *model.MatchRecord) error {
	_, err := s.Client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.Set(match.ID, match.Marshal(), 0)
		pipe.HSet(playerMatchIndex, match.WhiteID, match.ID)
		pipe.HSet(playerMatchIndex, match.BlackID, match.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("create match %s: %w", match.ID, err)
	}
	return nil
}

func (s *RedisStore) Match(id string) (*model.MatchRecord, error) {
	raw, err := s.Client.Get(id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch match %s: %w", id, err)
	}
	return model.UnmarshalMatchRecord([]byte(raw)), nil
}

func (s *RedisStore) MatchForPlayer(playerID string) (*model.MatchRecord, error) {
	matchID, err := s.Client.HGet(playerMatchIndex, playerID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch match index for %s: %w", playerID, err)
	}
	return s.Match(matchID)
}

func (s *RedisStore) FinishMatch(match *model.MatchRecord) error {
	_, err := s.Client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.Set(match.ID, match.Marshal(), 0)
		pipe.HDel(playerMatchIndex, match.WhiteID, match.BlackID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("finish match %s: %w", match.ID, err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
