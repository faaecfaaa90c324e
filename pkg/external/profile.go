// Package external talks to the profile service that owns player ratings.
package external

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Girishnag18/crownx-arena-sub000/config"
	"github.com/Girishnag18/crownx-arena-sub000/internal/ratelimit"
)

const ratingEndpoint = "profiles/rating"

type ratingResponse struct {
	Rating int `json:"rating"`
}

// ProfileClient fetches ratings over HTTP. Lookups that fail, miss, or hit
// the outbound rate limit fall back to the default rating; matchmaking must
// not stall on the profile service.
type ProfileClient struct {
	baseURL       string
	defaultRating int
	http          *http.Client
	limiter       *ratelimit.SlidingWindow
	logger        zerolog.Logger
}

func NewProfileClient(cfg config.ProfileConfig, defaultRating int, logger zerolog.Logger) *ProfileClient {
	return &ProfileClient{
		baseURL:       cfg.URL,
		defaultRating: defaultRating,
		http:          &http.Client{Timeout: 5 * time.Second},
		limiter:       ratelimit.NewSlidingWindow(cfg.RateLimit, time.Duration(cfg.RateWindow)*time.Second),
		logger:        logger,
	}
}

// Rating returns the player's rating, or the default when unavailable.
func (c *ProfileClient) Rating(playerID string) int {
	if c.baseURL == "" {
		return c.defaultRating
	}
	if !c.limiter.Allow(ratingEndpoint) {
		c.logger.Warn().Str("player", playerID).Msg("profile rating call rate limited, using default")
		return c.defaultRating
	}

	url := fmt.Sprintf("%s/profiles/%s/rating", c.baseURL, playerID)
	resp, err := c.http.Get(url)
	if err != nil {
		c.logger.Warn().Err(err).Str("player", playerID).Msg("error getting rating from profile service")
		return c.defaultRating
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("player", playerID).Msg("profile service returned non-OK")
		return c.defaultRating
	}

	var body ratingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn().Err(err).Str("player", playerID).Msg("error decoding rating response")
		return c.defaultRating
	}
	return body.Rating
}
