// Package client drives repeated matchmaking calls for one local player and
// exposes a small state machine: idle -> searching -> matched | error, with
// searching -> idle on cancellation.
package client

import (
	"errors"
	"sync"
	"time"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
)

type SearchState string

const (
	StateIdle      SearchState = "idle"
	StateSearching SearchState = "searching"
	StateMatched   SearchState = "matched"
	StateError     SearchState = "error"
)

var ErrSearchActive = errors.New("search already in progress")

// Searcher is the matchmaking surface the controller drives. It is satisfied
// by services.MatchmakingService and by any HTTP adapter with the same shape.
type Searcher interface {
	SubmitSearch(req model.SearchRequest) (*model.SearchResult, error)
	CancelSearch(queue, playerID string) error
	SearchStatus(playerID string) (*model.MatchRecord, error)
}

type SearchController struct {
	playerID string
	searcher Searcher
	interval time.Duration

	mu      sync.Mutex
	state   SearchState
	queue   string
	matchID string
	errMsg  string
	stop    chan struct{}
}

func NewSearchController(playerID string, searcher Searcher, interval time.Duration) *SearchController {
	return &SearchController{
		playerID: playerID,
		searcher: searcher,
		interval: interval,
		state:    StateIdle,
	}
}

// Start issues one matchmaking call. An immediate pairing lands in matched;
// a queued response starts polling until a match naming this player appears.
// Starting over a finished search resets it; starting over a live one fails.
func (c *SearchController) Start(queue string) error {
	c.mu.Lock()
	if c.state == StateSearching {
		c.mu.Unlock()
		return ErrSearchActive
	}
	c.state = StateSearching
	c.queue = queue
	c.matchID = ""
	c.errMsg = ""
	c.mu.Unlock()

	result, err := c.searcher.SubmitSearch(model.SearchRequest{PlayerID: c.playerID, GameMode: queue})
	if err != nil {
		c.fail(err.Error())
		return err
	}

	if result.Matched {
		c.succeed(result.Match.ID)
		return nil
	}

	c.mu.Lock()
	if c.state != StateSearching {
		// Cancelled while the submit call was in flight.
		c.mu.Unlock()
		return nil
	}
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go c.poll(stop)
	return nil
}

// Cancel stops polling and removes the queue entry. Legal only from
// searching; a no-op in every other state.
func (c *SearchController) Cancel() {
	c.mu.Lock()
	if c.state != StateSearching {
		c.mu.Unlock()
		return
	}
	c.state = StateIdle
	queue := c.queue
	c.stopLocked()
	c.mu.Unlock()

	// Best effort; an absent entry is not an error.
	c.searcher.CancelSearch(queue, c.playerID)
}

// Close stops any polling without touching the queue entry. Callers must
// close the controller when they are done with it or the poll ticker leaks.
func (c *SearchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *SearchController) State() SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// MatchID is the paired match identifier, set once state is matched.
func (c *SearchController) MatchID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matchID
}

// Err is the failure message, set once state is error.
func (c *SearchController) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *SearchController) poll(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			match, err := c.searcher.SearchStatus(c.playerID)
			if err != nil {
				c.fail(err.Error())
				return
			}
			if match != nil {
				c.succeed(match.ID)
				return
			}
		}
	}
}

func (c *SearchController) succeed(matchID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSearching {
		return
	}
	c.state = StateMatched
	c.matchID = matchID
	c.stopLocked()
}

func (c *SearchController) fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSearching {
		return
	}
	c.state = StateError
	c.errMsg = msg
	c.stopLocked()
}

// stopLocked closes the poll channel once. Callers must hold the mutex.
func (c *SearchController) stopLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}
