// Package arena plays engine-vs-engine matches and reports the score.
package arena

import (
	"context"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

type IEngine interface {
	Search(ctx context.Context, params engine.SearchParams) (engine.SearchInfo, error)
}

type Config struct {
	Concurrency int
	// Openings is the number of random openings. Each one is played twice with colours swapped.
	Openings      int
	OpeningStones int
	BoardSize     int
	Seed          int64
}

type Arena struct {
	config     Config
	newEngineA func() IEngine
	newEngineB func() IEngine
	logger     zerolog.Logger
}

func New(config Config, newEngineA, newEngineB func() IEngine, logger zerolog.Logger) *Arena {
	return &Arena{
		config:     config,
		newEngineA: newEngineA,
		newEngineB: newEngineB,
		logger:     logger,
	}
}

// Run plays all games and returns the score of engine A.
func (a *Arena) Run(ctx context.Context) (Score, error) {
	a.logger.Info().Msg("arena-started")
	defer a.logger.Info().Msg("arena-finished")

	a.logger.Info().
		Int("num-cpu", runtime.NumCPU()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Int("concurrency", a.config.Concurrency).
		Int("openings", a.config.Openings).
		Int("board-size", a.config.BoardSize).
		Msg("arena-config")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var score Score

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, a.config, gameInfos)
	})

	g.Go(func() error {
		score = a.collectResults(gameResults)
		return nil
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return score, err
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = a.newEngineA()
	var engineB = a.newEngineB()
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engineA, engineB, gameInfo, a.config.BoardSize)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func (a *Arena) collectResults(gameResults <-chan gameResult) Score {
	var score Score
	for gameResult := range gameResults {
		score.add(gameResult)
		var stat = computeStat(score.Wins, score.Losses, score.Draws)
		a.logger.Info().
			Int("game", gameResult.gameInfo.gameNumber).
			Str("result", gameResultString(gameResult.result)).
			Str("comment", gameResult.comment).
			Int("moves", len(gameResult.moves)).
			Msg("game-finished")
		a.logger.Info().
			Int("wins", score.Wins).
			Int("losses", score.Losses).
			Int("draws", score.Draws).
			Float64("winning-fraction", stat.WinningFraction).
			Float64("elo-difference", stat.EloDifference).
			Float64("los", stat.LOS).
			Msg("score")
	}
	return score
}
