package arena

import "math"

type GameStatistics struct {
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}

//https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return GameStatistics{
		WinningFraction: winningFraction,
		EloDifference:   eloDifference,
		LOS:             los,
	}
}
