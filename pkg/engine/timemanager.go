package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

type timeManager struct {
	start  time.Time
	budget time.Duration
	cancel context.CancelFunc
}

func newTimeManager(ctx context.Context, start time.Time, budget time.Duration) (context.Context, *timeManager) {
	var tm = &timeManager{
		start:  start,
		budget: budget,
	}
	var cancel context.CancelFunc
	if budget > 0 {
		ctx, cancel = context.WithDeadline(ctx, start.Add(budget))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	tm.cancel = cancel
	return ctx, tm
}

func (tm *timeManager) Close() {
	tm.cancel()
}

type searchOutcome struct {
	result SearchResult
	err    error
}

// SelectMoveWithin runs SelectMove on its own goroutine and board copy. When the
// budget runs out first the search is cancelled and QuickMove answers instead;
// timedOut reports that case. A zero budget means no limit.
func SelectMoveWithin(ctx context.Context, board *Board, side Cell, cfg Config, usePruning bool,
	budget time.Duration, rnd *rand.Rand) (result SearchResult, timedOut bool, err error) {

	var searchCtx, tm = newTimeManager(ctx, time.Now(), budget)
	defer tm.Close()

	var clone = board.Clone()
	var done = make(chan searchOutcome, 1)
	go func() {
		var r, err = SelectMove(searchCtx, clone, side, cfg, usePruning)
		done <- searchOutcome{result: r, err: err}
	}()

	var o searchOutcome
	select {
	case o = <-done:
	case <-searchCtx.Done():
		// a result that is ready together with the deadline still wins
		select {
		case o = <-done:
		default:
			o.err = searchCtx.Err()
		}
	}

	if o.err == nil {
		return o.result, false, nil
	}
	if err := ctx.Err(); err != nil {
		return SearchResult{Move: MoveEmpty}, false, err
	}
	if !errors.Is(o.err, context.DeadlineExceeded) {
		return SearchResult{Move: MoveEmpty}, false, o.err
	}
	var move, ok = QuickMove(board, side, rnd)
	return SearchResult{Move: move, Found: ok}, true, nil
}
