package arena

import (
	"context"
	"fmt"

	"github.com/ChizhovVadim/GomokuGo/internal/game"
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

func playGame(
	ctx context.Context,
	engineA, engineB IEngine,
	info gameInfo,
	boardSize int,
) (gameResult, error) {

	var g = game.New(boardSize)
	for _, m := range info.opening {
		if err := g.Play(m); err != nil {
			return gameResult{}, fmt.Errorf("game %v opening: %w", info.gameNumber, err)
		}
	}

	for !g.IsFinished() {
		var eng IEngine
		if (g.ToMove == Black) == info.engineAIsBlack {
			eng = engineA
		} else {
			eng = engineB
		}
		var searchResult, err = eng.Search(ctx, engine.SearchParams{
			Board: g.Board,
			Side:  g.ToMove,
		})
		if err != nil {
			return gameResult{}, err
		}
		if !searchResult.Found {
			return gameResult{}, fmt.Errorf("game %v: no move on a board with empty cells", info.gameNumber)
		}
		if err := g.Play(searchResult.Move); err != nil {
			return gameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
		}
	}

	var res = gameResult{gameInfo: info, moves: g.History}
	switch {
	case g.Status == game.StatusDraw:
		res.comment = "full board"
		res.result = gameResultDraw
	case g.Winner == Black:
		res.comment = "five in a row"
		res.result = gameResultBlackWins
	default:
		res.comment = "five in a row"
		res.result = gameResultWhiteWins
	}
	return res, nil
}
