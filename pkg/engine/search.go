package engine

import (
	"context"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

// searcher owns a private board for the span of one search and mutates it
// with strict place/undo discipline.
type searcher struct {
	ctx        context.Context
	board      *Board
	me         Cell
	opp        Cell
	cfg        Config
	usePruning bool
	nodes      int64
}

func newSearcher(ctx context.Context, board *Board, me Cell, cfg Config, usePruning bool) *searcher {
	return &searcher{
		ctx:        ctx,
		board:      board,
		me:         me,
		opp:        me.Opponent(),
		cfg:        cfg,
		usePruning: usePruning,
	}
}

func (s *searcher) incNodes() {
	s.nodes++
	if s.nodes&255 == 0 && s.ctx.Err() != nil {
		panic(errSearchAborted)
	}
}

// withStone places c at m for the duration of f. The cell is emptied again
// even if f unwinds with a panic.
func (s *searcher) withStone(m Move, c Cell, f func() int) int {
	s.board.Set(m.Row, m.Col, c)
	defer s.board.Remove(m)
	return f()
}

// wins reports whether placing c at m completes a line for c.
func (s *searcher) wins(m Move, c Cell) bool {
	s.board.Set(m.Row, m.Col, c)
	defer s.board.Remove(m)
	return CheckWin(s.board, c)
}

func (s *searcher) evaluate() int {
	return Evaluate(s.board, s.me, s.cfg)
}

func (s *searcher) won(side Cell) bool {
	return CheckWin(s.board, side)
}

func (s *searcher) candidates() []Move {
	return RelevantMoves(s.board, DefaultRadius)
}

func (s *searcher) mover(maximizing bool) Cell {
	if maximizing {
		return s.me
	}
	return s.opp
}

// leafValue resolves nodes that need no expansion. ok is false when the
// caller has to search the children.
func (s *searcher) leafValue(depth int) (value int, ok bool) {
	if s.won(s.opp) {
		return -WinScore, true
	}
	if s.won(s.me) {
		return WinScore, true
	}
	if s.board.IsFull() {
		return valueDraw, true
	}
	if depth <= 0 {
		return s.evaluate(), true
	}
	return 0, false
}

// search runs the configured tree search for the side to move after the root move.
func (s *searcher) search(depth int, maximizing bool, alpha, beta int) int {
	if s.usePruning {
		return s.alphaBeta(depth, alpha, beta, maximizing)
	}
	return s.minimax(depth, maximizing)
}
