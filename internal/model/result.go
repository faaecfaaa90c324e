package model

// Outcome is a match result from one player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

// Score maps an outcome to the Elo score value.
func (o Outcome) Score() float64 {
	switch o {
	case OutcomeWin:
		return 1
	case OutcomeLoss:
		return 0
	default:
		return 0.5
	}
}

// Winner identifies the winning side of a finished match.
type Winner string

const (
	WinnerWhite Winner = "white"
	WinnerBlack Winner = "black"
	WinnerDraw  Winner = "draw"
)

// Outcomes returns the white and black outcomes for the winner.
func (w Winner) Outcomes() (Outcome, Outcome, bool) {
	switch w {
	case WinnerWhite:
		return OutcomeWin, OutcomeLoss, true
	case WinnerBlack:
		return OutcomeLoss, OutcomeWin, true
	case WinnerDraw:
		return OutcomeDraw, OutcomeDraw, true
	default:
		return "", "", false
	}
}

// MatchState for the winner, used when finalizing a record.
func (w Winner) MatchState() MatchState {
	switch w {
	case WinnerWhite:
		return MatchWhiteWon
	case WinnerBlack:
		return MatchBlackWon
	default:
		return MatchDrawn
	}
}

type PlayerResult struct {
	PlayerID  string `json:"playerId"`
	OldRating int    `json:"oldRating"`
	NewRating int    `json:"newRating"`
	Tier      string `json:"tier"`
}

type MatchResult struct {
	MatchID string       `json:"matchId"`
	Winner  Winner       `json:"winner"`
	White   PlayerResult `json:"white"`
	Black   PlayerResult `json:"black"`
}
