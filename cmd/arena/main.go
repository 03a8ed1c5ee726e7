package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ChizhovVadim/GomokuGo/internal/arena"
	"github.com/ChizhovVadim/GomokuGo/internal/logging"
	"github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

type Config struct {
	arena.Config
	DifficultyA int
	DifficultyB int
	PruningA    bool
	PruningB    bool
	TimeBudget  time.Duration
	LogLevel    string
}

var config Config

func main() {
	var err = run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played at once")
	flag.IntVar(&config.Openings, "openings", 50, "Number of openings, each played with both colours")
	flag.IntVar(&config.OpeningStones, "stones", 2, "Stones in a random opening")
	flag.IntVar(&config.BoardSize, "size", common.DefaultSize, "Board size")
	flag.Int64Var(&config.Seed, "seed", 1, "Seed of the opening generator")
	flag.IntVar(&config.DifficultyA, "a", 2, "Difficulty of engine A")
	flag.IntVar(&config.DifficultyB, "b", 2, "Difficulty of engine B")
	flag.BoolVar(&config.PruningA, "pruninga", true, "Engine A uses alpha-beta pruning")
	flag.BoolVar(&config.PruningB, "pruningb", false, "Engine B uses alpha-beta pruning")
	flag.DurationVar(&config.TimeBudget, "movetime", 10*time.Second, "Time budget per move")
	flag.StringVar(&config.LogLevel, "log", "info", "Log level")
	flag.Parse()

	var logger, err = logging.New(os.Stderr, config.LogLevel)
	if err != nil {
		return err
	}
	logger.Info().Interface("config", config).Msg("arena-config")

	var newEngine = func(difficulty int, usePruning bool) func() arena.IEngine {
		return func() arena.IEngine {
			var options = engine.NewOptions(difficulty)
			options.UsePruning = usePruning
			options.TimeBudget = config.TimeBudget
			var eng = engine.NewEngine(options)
			eng.SetLogger(logger)
			return eng
		}
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var a = arena.New(config.Config,
		newEngine(config.DifficultyA, config.PruningA),
		newEngine(config.DifficultyB, config.PruningB),
		logger)
	score, err := a.Run(ctx)
	if err != nil {
		return err
	}
	var stat = score.Stat()
	fmt.Printf("Score: %v - %v - %v  [%.3f] %v\n",
		score.Wins, score.Losses, score.Draws, stat.WinningFraction, score.Games())
	fmt.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
		stat.EloDifference, stat.LOS*100)
	return nil
}
