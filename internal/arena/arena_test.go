package arena

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

func newTestEngine(difficulty int, usePruning bool) func() IEngine {
	return func() IEngine {
		var options = engine.NewOptions(difficulty)
		options.RandomMoveRate = 0
		options.UsePruning = usePruning
		return engine.NewEngine(options)
	}
}

func TestComputeStat(t *testing.T) {
	var stat = computeStat(6, 2, 2)
	if math.Abs(stat.WinningFraction-0.7) > 1e-9 {
		t.Error(stat.WinningFraction)
	}
	if math.Abs(stat.EloDifference-147.19) > 0.01 {
		t.Error(stat.EloDifference)
	}
	if math.Abs(stat.LOS-0.92135) > 0.0001 {
		t.Error(stat.LOS)
	}
	stat = computeStat(3, 3, 4)
	if stat.EloDifference != 0 || stat.LOS != 0.5 {
		t.Error(stat)
	}
}

func TestScoreAdd(t *testing.T) {
	var score Score
	score.add(gameResult{gameInfo: gameInfo{engineAIsBlack: true}, result: gameResultBlackWins})
	score.add(gameResult{gameInfo: gameInfo{engineAIsBlack: false}, result: gameResultBlackWins})
	score.add(gameResult{gameInfo: gameInfo{engineAIsBlack: false}, result: gameResultWhiteWins})
	score.add(gameResult{gameInfo: gameInfo{engineAIsBlack: true}, result: gameResultDraw})
	if score != (Score{Wins: 2, Losses: 1, Draws: 1}) || score.Games() != 4 {
		t.Error(score)
	}
}

func TestRandomOpening(t *testing.T) {
	var rnd = rand.New(rand.NewSource(1))
	var opening = randomOpening(rnd, DefaultSize, 20)
	if len(opening) != 2*(WinLength-1) {
		t.Fatal(len(opening))
	}
	var seen = make(map[Move]bool)
	for _, m := range opening {
		if seen[m] || Abs(m.Row-7) > 2 || Abs(m.Col-7) > 2 {
			t.Error(m)
		}
		seen[m] = true
	}
}

func TestPlayGame(t *testing.T) {
	var info = gameInfo{opening: []Move{{Row: 4, Col: 4}}, engineAIsBlack: false, gameNumber: 1}
	var res, err = playGame(context.Background(), newTestEngine(2, true)(), newTestEngine(1, true)(), info, 9)
	if err != nil {
		t.Fatal(err)
	}
	if res.moves[0] != (Move{Row: 4, Col: 4}) || len(res.moves) < 2*WinLength-1 {
		t.Error(res.moves)
	}
	var b = NewBoard(9)
	var side = Black
	for _, m := range res.moves {
		if err := b.Play(m, side); err != nil {
			t.Fatal(err)
		}
		side = side.Opponent()
	}
	switch res.result {
	case gameResultBlackWins:
		if Winner(b) != Black {
			t.Error("black did not win")
		}
	case gameResultWhiteWins:
		if Winner(b) != White {
			t.Error("white did not win")
		}
	default:
		if !b.IsFull() || Winner(b) != Empty {
			t.Error("not a draw")
		}
	}
}

type occupiedEngine struct{}

func (occupiedEngine) Search(ctx context.Context, params engine.SearchParams) (engine.SearchInfo, error) {
	return engine.SearchInfo{Move: Move{Row: 0, Col: 0}, Found: true}, nil
}

func TestPlayGameBadMove(t *testing.T) {
	var info = gameInfo{engineAIsBlack: true, gameNumber: 1}
	var engineA = occupiedEngine{}
	if _, err := playGame(context.Background(), engineA, engineA, info, 9); err == nil {
		t.Error("expected error")
	}
}

func TestArenaRun(t *testing.T) {
	var log bytes.Buffer
	var a = New(Config{
		Concurrency:   2,
		Openings:      2,
		OpeningStones: 2,
		BoardSize:     9,
		Seed:          1,
	}, newTestEngine(2, true), newTestEngine(1, false), zerolog.New(&log))
	var score, err = a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if score.Games() != 4 {
		t.Error(score)
	}
	if strings.Count(log.String(), "game-finished") != 4 {
		t.Error(log.String())
	}
}

func TestArenaRunError(t *testing.T) {
	var newEngine = func() IEngine { return occupiedEngine{} }
	var a = New(Config{Concurrency: 2, Openings: 3, BoardSize: 9}, newEngine, newEngine, zerolog.Nop())
	if _, err := a.Run(context.Background()); err == nil {
		t.Error("expected error")
	}
}
