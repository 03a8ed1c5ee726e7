package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

type SearchParams struct {
	Board *Board
	Side  Cell
}

type SearchInfo struct {
	Move     Move
	Score    int
	Found    bool
	Depth    int
	Nodes    int64
	Time     time.Duration
	Fallback bool
	Random   bool
}

type Engine struct {
	Options Options
	logger  zerolog.Logger
	mu      sync.Mutex
	rnd     *rand.Rand
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options: options,
		logger:  zerolog.Nop(),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (e *Engine) SetLogger(logger zerolog.Logger) {
	e.logger = logger
}

// Seed makes random choices reproducible.
func (e *Engine) Seed(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rnd = rand.New(rand.NewSource(seed))
}

// Search chooses a move for params.Side within the configured time budget.
func (e *Engine) Search(ctx context.Context, params SearchParams) (SearchInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var start = time.Now()
	var options = e.Options

	if options.RandomMoveRate > 0 && e.rnd.Float64() < options.RandomMoveRate {
		var move, ok = RandomMove(params.Board, e.rnd)
		var info = SearchInfo{Move: move, Found: ok, Random: true, Time: time.Since(start)}
		e.logger.Debug().Str("move", move.String()).Msg("random-move")
		return info, nil
	}

	var result, timedOut, err = SelectMoveWithin(ctx, params.Board, params.Side,
		options.Config, options.UsePruning, options.TimeBudget, e.rnd)
	if err != nil {
		e.logger.Err(err).Str("side", params.Side.String()).Msg("search-failed")
		return SearchInfo{Move: MoveEmpty}, err
	}
	var info = SearchInfo{
		Move:     result.Move,
		Score:    result.Score,
		Found:    result.Found,
		Depth:    options.Config.MaxDepth,
		Nodes:    result.Nodes,
		Time:     time.Since(start),
		Fallback: timedOut,
	}
	if timedOut {
		e.logger.Warn().
			Dur("budget", options.TimeBudget).
			Str("move", info.Move.String()).
			Msg("search-timeout")
	} else {
		e.logger.Debug().
			Str("side", params.Side.String()).
			Str("move", info.Move.String()).
			Int("score", info.Score).
			Int("depth", info.Depth).
			Int64("nodes", info.Nodes).
			Dur("time", info.Time).
			Bool("pruning", options.UsePruning).
			Msg("best-move")
	}
	return info, nil
}
