package rating

import (
	"errors"
	"math"
)

const (
	DefaultRating  = 1200
	DefaultKFactor = 24
)

var (
	ErrInvalidScore   = errors.New("score must be 0, 0.5 or 1")
	ErrInvalidKFactor = errors.New("k-factor must be positive")
)

// Expected is the logistic expected score of self against opponent.
func Expected(self, opponent int) float64 {
	return 1 / (1 + math.Pow(10, float64(opponent-self)/400))
}

// Update returns the new rating after a game scored 1 (win), 0.5 (draw) or
// 0 (loss). The result is rounded half away from zero. Ratings are not
// clamped; repeated extreme results can move them arbitrarily far.
func Update(self, opponent int, score float64, kFactor int) (int, error) {
	if score != 0 && score != 0.5 && score != 1 {
		return 0, ErrInvalidScore
	}
	if kFactor <= 0 {
		return 0, ErrInvalidKFactor
	}

	expected := Expected(self, opponent)
	return int(math.Round(float64(self) + float64(kFactor)*(score-expected))), nil
}
