package engine

import (
	"math/rand"
	"time"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

// QuickMove is the cheap move used when a search overruns its budget:
// win, block, pre-empt an opponent four, play near the stones, take the centre,
// or play anywhere. ok is false on a full board.
func QuickMove(b *Board, side Cell, rnd *rand.Rand) (Move, bool) {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var board = b.Clone()
	var opp = side.Opponent()
	var empty = board.EmptyCells()
	if len(empty) == 0 {
		return MoveEmpty, false
	}

	for _, m := range empty {
		if completesLine(board, m, side) {
			return m, true
		}
	}
	for _, m := range empty {
		if completesLine(board, m, opp) {
			return m, true
		}
	}
	for _, m := range empty {
		if makesFour(board, m, opp) {
			return m, true
		}
	}

	if moves := RelevantMoves(board, DefaultRadius); len(moves) != 0 {
		return moves[rnd.Intn(len(moves))], true
	}
	if center := board.Center(); board.At(center) == Empty {
		return center, true
	}
	return empty[rnd.Intn(len(empty))], true
}

// RandomMove returns a uniformly random empty cell.
func RandomMove(b *Board, rnd *rand.Rand) (Move, bool) {
	var empty = b.EmptyCells()
	if len(empty) == 0 {
		return MoveEmpty, false
	}
	return empty[rnd.Intn(len(empty))], true
}

func completesLine(b *Board, m Move, c Cell) bool {
	b.Set(m.Row, m.Col, c)
	defer b.Remove(m)
	return CheckWin(b, c)
}

// makesFour reports whether a stone of c at m leaves WinLength-1 stones of c
// in the WinLength cells running forward from m in some direction.
func makesFour(b *Board, m Move, c Cell) bool {
	b.Set(m.Row, m.Col, c)
	defer b.Remove(m)
	for _, dir := range Directions {
		if CountForward(b, m.Row, m.Col, dir[0], dir[1], c) == WinLength-1 {
			return true
		}
	}
	return false
}
