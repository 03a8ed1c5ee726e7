package engine

// alphaBeta is minimax with fail-soft alpha-beta pruning over the same ordered tree.
func (s *searcher) alphaBeta(depth, alpha, beta int, maximizing bool) int {
	s.incNodes()
	if value, ok := s.leafValue(depth); ok {
		return value
	}

	var mover = s.mover(maximizing)
	var child = func() int {
		return s.alphaBeta(depth-1, alpha, beta, !maximizing)
	}

	var best int
	if maximizing {
		best = -valueInfinity
		for _, om := range s.orderMoves(s.candidates(), mover) {
			var score = s.withStone(om.Move, mover, child)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
	} else {
		best = valueInfinity
		for _, om := range s.orderMoves(s.candidates(), mover) {
			var score = s.withStone(om.Move, mover, child)
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				break
			}
		}
	}
	return best
}
