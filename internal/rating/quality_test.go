package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityElo(t *testing.T) {
	assert.InDelta(t, 1.0, Quality(1500, 1500, "elo"), 1e-9, "equal ratings are a perfect match")

	narrow := Quality(1500, 1450, "elo")
	wide := Quality(1500, 1100, "elo")
	assert.Greater(t, narrow, wide, "smaller rating gap must score higher")

	assert.InDelta(t, Quality(1200, 1600, "elo"), Quality(1600, 1200, "elo"), 1e-9, "quality is symmetric")
}

func TestQualityBounded(t *testing.T) {
	for _, gap := range []int{0, 50, 200, 400, 1000} {
		q := Quality(1500, 1500+gap, "elo")
		assert.Greater(t, q, 0.0)
		assert.LessOrEqual(t, q, 1.0)
	}
}
