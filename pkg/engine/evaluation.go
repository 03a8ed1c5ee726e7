package engine

import (
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

// Evaluate scores the position from me's point of view by scanning every window of
// WinLength cells. Windows holding stones of both sides are dead and score nothing.
// A complete line short-circuits to ±WinScore.
func Evaluate(b *Board, me Cell, cfg Config) int {
	var opp = me.Opponent()
	var n = b.Size()
	var w = cfg.WinLength
	var score = 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			for _, dir := range Directions {
				var dr, dc = dir[0], dir[1]
				if !b.InBounds(row+(w-1)*dr, col+(w-1)*dc) {
					continue
				}
				var own, other, empty int
				for k := 0; k < w; k++ {
					switch b.Get(row+k*dr, col+k*dc) {
					case me:
						own++
					case opp:
						other++
					default:
						empty++
					}
				}
				if other > 0 && own == 0 {
					if other == w {
						return -WinScore
					}
					score -= cfg.Scores[other]
					if other == w-1 && empty == 1 {
						score -= cfg.OppFourPenalty
					}
				} else if own > 0 && other == 0 {
					if own == w {
						return WinScore
					}
					score += cfg.Scores[own] * cfg.OffensePercent / 100
					if own == w-1 && empty == 1 {
						score += cfg.OwnFourBonus
					}
				}
			}
		}
	}
	return score
}
