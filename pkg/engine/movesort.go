package engine

import (
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

type OrderedMove struct {
	Move Move
	Key  int
}

// orderMoves scores every move one ply deep for mover and sorts them best first
// for that side: descending for the maximizer, ascending for the minimizer.
func (s *searcher) orderMoves(moves []Move, mover Cell) []OrderedMove {
	var result = make([]OrderedMove, len(moves))
	for i, m := range moves {
		var key = s.withStone(m, mover, s.evaluate)
		if mover != s.me {
			key = -key
		}
		result[i] = OrderedMove{Move: m, Key: key}
	}
	sortMoves(result)
	return result
}

// sortMoves is a stable insertion sort by descending key.
func sortMoves(moves []OrderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
