package engine

import (
	"fmt"
	"time"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

// Config holds the parameters of a single search. It is passed by value.
type Config struct {
	WinLength int
	MaxDepth  int
	// Scores is indexed by the number of stones of one side in a window.
	Scores         [WinLength]int
	OffensePercent int
	OwnFourBonus   int
	OppFourPenalty int
}

var (
	defaultScores = [WinLength]int{0, 50, 500, 5000, 50000}
	boostedScores = [WinLength]int{0, 60, 600, 6000, 60000}
)

func DefaultConfig() Config {
	return Config{
		WinLength:      WinLength,
		MaxDepth:       3,
		Scores:         defaultScores,
		OffensePercent: 120,
		OwnFourBonus:   120000,
		OppFourPenalty: 90000,
	}
}

// ConfigForDifficulty maps levels 1..4 to search depth. Levels 3 and above play with
// the boosted scoring table.
func ConfigForDifficulty(difficulty int) Config {
	var cfg = DefaultConfig()
	switch difficulty {
	case 1, 2, 3, 4:
		cfg.MaxDepth = difficulty
	default:
		cfg.MaxDepth = 2
	}
	if difficulty >= 3 {
		cfg.Scores = boostedScores
	}
	return cfg
}

func (c Config) Validate() error {
	if c.WinLength != WinLength {
		return fmt.Errorf("%w: win length %d, only %d is supported", ErrInvalidConfig, c.WinLength, WinLength)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	for k := 1; k < WinLength; k++ {
		if c.Scores[k] <= 0 {
			return fmt.Errorf("%w: score for %d stones must be positive", ErrInvalidConfig, k)
		}
	}
	if c.OffensePercent < 100 {
		return fmt.Errorf("%w: offense percent %d", ErrInvalidConfig, c.OffensePercent)
	}
	return nil
}

// Options configure an Engine across searches.
type Options struct {
	Config     Config
	UsePruning bool
	TimeBudget time.Duration
	// RandomMoveRate is the probability of playing a random legal move instead of searching.
	RandomMoveRate float64
}

func NewOptions(difficulty int) Options {
	var result = Options{
		Config:     ConfigForDifficulty(difficulty),
		UsePruning: true,
		TimeBudget: 10 * time.Second,
	}
	if difficulty == 1 {
		result.RandomMoveRate = 0.3
	}
	return result
}
