package engine

// minimax searches depth plies without pruning. Every child is visited.
func (s *searcher) minimax(depth int, maximizing bool) int {
	s.incNodes()
	if value, ok := s.leafValue(depth); ok {
		return value
	}

	var mover = s.mover(maximizing)
	var child = func() int {
		return s.minimax(depth-1, !maximizing)
	}

	var best int
	if maximizing {
		best = -valueInfinity
		for _, om := range s.orderMoves(s.candidates(), mover) {
			var score = s.withStone(om.Move, mover, child)
			if score > best {
				best = score
			}
		}
	} else {
		best = valueInfinity
		for _, om := range s.orderMoves(s.candidates(), mover) {
			var score = s.withStone(om.Move, mover, child)
			if score < best {
				best = score
			}
		}
	}
	return best
}
