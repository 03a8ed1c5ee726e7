package arena

import (
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultBlackWins
	gameResultWhiteWins
)

type gameInfo struct {
	opening        []Move
	engineAIsBlack bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []Move
	comment  string
	result   int
}

// Score counts results from the point of view of engine A.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

func (s *Score) add(r gameResult) {
	if r.result == gameResultDraw {
		s.Draws++
	} else if r.result == gameResultBlackWins && r.gameInfo.engineAIsBlack ||
		r.result == gameResultWhiteWins && !r.gameInfo.engineAIsBlack {
		s.Wins++
	} else {
		s.Losses++
	}
}

func (s Score) Games() int {
	return s.Wins + s.Losses + s.Draws
}

func (s Score) Stat() GameStatistics {
	return computeStat(s.Wins, s.Losses, s.Draws)
}

func gameResultString(v int) string {
	if v == gameResultBlackWins {
		return "1-0"
	}
	if v == gameResultWhiteWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
