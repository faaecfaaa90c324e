package rating

import (
	"log"
	"math"

	"github.com/fasmat/trueskill"
)

// Quality scores how even a pairing is: 1.0 for a perfect match, approaching
// 0.0 for a complete mismatch.
func Quality(ratingA, ratingB int, mode string) float64 {
	switch mode {
	case "trueskill":
		return qualityTrueSkill(ratingA, ratingB)
	default:
		return qualityElo(ratingA, ratingB)
	}
}

func qualityElo(ratingA, ratingB int) float64 {
	eloDiff := float64(ratingA - ratingB)

	// Expected win probability of the higher rated player
	winProb := 1 / (1 + math.Pow(10, (eloDiff/400)))
	if winProb < 0.5 {
		winProb = 1 - winProb
	}

	return 1.5 - winProb
}

func qualityTrueSkill(ratingA, ratingB int) float64 {
	muA := float64(ratingA)
	muB := float64(ratingB)
	playerA := trueskill.NewPlayer(1, muA, muA/3)
	playerB := trueskill.NewPlayer(2, muB, muB/3)

	teamA := trueskill.NewTeam([]trueskill.Player{playerA})
	teamB := trueskill.NewTeam([]trueskill.Player{playerB})

	avgSigma := (playerA.GetSigma() + playerB.GetSigma()) / 2

	beta := avgSigma * 3 / 2 // skill gap at which the stronger player wins 76% of the time
	tau := beta / 100
	pDraw := 0.1 // chess games draw often enough to matter

	game := trueskill.NewGame(beta, tau, pDraw)
	result, err := game.CalcMatchQuality([]trueskill.Team{teamA, teamB})
	if err != nil {
		log.Println(err)
		return 0.0
	}

	return result
}
