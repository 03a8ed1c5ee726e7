package engine

import (
	"context"
	"fmt"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

type SearchResult struct {
	Move  Move
	Score int
	Found bool
	Nodes int64
}

// SelectMove picks a move for side. The board is copied first and never modified.
//
// The protocol is strict: an immediate win is played at once, then forced blocks
// are searched and the best one is played, otherwise every candidate is searched
// in order of its static score. Found is false only when no empty cell is left.
func SelectMove(ctx context.Context, board *Board, side Cell, cfg Config, usePruning bool) (SearchResult, error) {
	if err := cfg.Validate(); err != nil {
		return SearchResult{Move: MoveEmpty}, err
	}
	if !side.IsPlayer() {
		return SearchResult{Move: MoveEmpty}, ErrInvalidSide
	}
	var s = newSearcher(ctx, board.Clone(), side, cfg, usePruning)
	var result, err = s.selectMove()
	result.Nodes = s.nodes
	return result, err
}

func (s *searcher) selectMove() (result SearchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchAborted {
				result = SearchResult{Move: MoveEmpty}
				err = s.ctx.Err()
				return
			}
			panic(r)
		}
	}()

	var moves = s.candidates()
	for _, m := range moves {
		if !m.IsValid(s.board.Size()) || s.board.At(m) != Empty {
			return SearchResult{Move: MoveEmpty}, fmt.Errorf("%w: %v", ErrBadCandidate, m)
		}
	}
	if len(moves) == 0 {
		return SearchResult{Move: MoveEmpty}, nil
	}

	for _, m := range moves {
		if s.wins(m, s.me) {
			return SearchResult{Move: m, Score: WinScore, Found: true}, nil
		}
	}

	var depth = s.cfg.MaxDepth - 1
	var child = func() int {
		return s.search(depth, false, -valueInfinity, valueInfinity)
	}

	var best = SearchResult{Move: MoveEmpty}
	for _, m := range moves {
		if !s.wins(m, s.opp) {
			continue
		}
		var score = s.withStone(m, s.me, child)
		if !best.Found || score > best.Score {
			best = SearchResult{Move: m, Score: score, Found: true}
		}
	}
	if best.Found {
		return best, nil
	}

	var alpha = -valueInfinity
	var rootChild = func() int {
		return s.search(depth, false, alpha, valueInfinity)
	}
	for _, om := range s.orderMoves(moves, s.me) {
		var score = s.withStone(om.Move, s.me, rootChild)
		if !best.Found || score > best.Score {
			best = SearchResult{Move: om.Move, Score: score, Found: true}
		}
		if best.Score > alpha {
			alpha = best.Score
		}
		if best.Score >= WinScore {
			break
		}
	}
	return best, nil
}
