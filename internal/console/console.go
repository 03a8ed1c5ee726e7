// Package console runs games in a line oriented terminal session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/GomokuGo/internal/game"
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

type Mode int

const (
	ModeHumanHuman Mode = 1 + iota
	ModeHumanAI
	ModeAIAI
)

var errInputClosed = errors.New("input closed")

type Console struct {
	scanner     *bufio.Scanner
	out         io.Writer
	logger      zerolog.Logger
	defaultSize int
	timeBudget  time.Duration
}

func New(in io.Reader, out io.Writer, logger zerolog.Logger, defaultSize int, timeBudget time.Duration) *Console {
	return &Console{
		scanner:     bufio.NewScanner(in),
		out:         out,
		logger:      logger,
		defaultSize: defaultSize,
		timeBudget:  timeBudget,
	}
}

// Run plays games until the user declines a replay or the input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		var err = c.session(ctx)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) session(ctx context.Context) error {
	var size, err = c.askSize()
	if err != nil {
		return err
	}
	mode, err := c.askMode()
	if err != nil {
		return err
	}
	if err := c.Play(ctx, size, mode); err != nil {
		return err
	}
	answer, err := c.ask("Play again? (y/n): ")
	if err != nil {
		return err
	}
	if !strings.HasPrefix(strings.ToLower(answer), "y") {
		return errInputClosed
	}
	return nil
}

// players returns the engine for each side, nil for a human.
func (c *Console) players(mode Mode) (black, white *engine.Engine) {
	switch mode {
	case ModeHumanAI:
		white = c.newEngine(3, false)
	case ModeAIAI:
		black = c.newEngine(2, true)
		white = c.newEngine(2, false)
	}
	return
}

func (c *Console) newEngine(difficulty int, usePruning bool) *engine.Engine {
	var options = engine.NewOptions(difficulty)
	options.UsePruning = usePruning
	options.TimeBudget = c.timeBudget
	var eng = engine.NewEngine(options)
	eng.SetLogger(c.logger)
	return eng
}

// Play runs one game to its end.
func (c *Console) Play(ctx context.Context, size int, mode Mode) error {
	var g = game.New(size)
	var black, white = c.players(mode)
	var start = time.Now()

	fmt.Fprintln(c.out, g.Board)
	for !g.IsFinished() {
		var eng = black
		if g.ToMove == White {
			eng = white
		}
		var m Move
		if eng == nil {
			var err error
			m, err = c.askMove(g)
			if err != nil {
				return err
			}
		} else {
			var info, err = eng.Search(ctx, engine.SearchParams{Board: g.Board, Side: g.ToMove})
			if err != nil {
				return err
			}
			m = info.Move
			fmt.Fprintf(c.out, "AI (%v) plays %v\n", g.ToMove, m)
		}
		if err := g.Play(m); err != nil {
			return err
		}
		fmt.Fprintln(c.out, g.Board)
	}

	if g.Status == game.StatusWon {
		fmt.Fprintf(c.out, "Player %v wins!\n", g.Winner)
	} else {
		fmt.Fprintln(c.out, "It's a draw!")
	}
	c.logger.Info().
		Int("size", size).
		Int("mode", int(mode)).
		Str("result", g.Status.String()).
		Str("winner", g.Winner.String()).
		Int("moves", len(g.History)).
		Dur("time", time.Since(start)).
		Msg("game-finished")
	return nil
}

func (c *Console) askMove(g *game.Game) (Move, error) {
	for {
		var line, err = c.ask(fmt.Sprintf("Player %v, enter your move (row,col): ", g.ToMove))
		if err != nil {
			return MoveEmpty, err
		}
		m, err := ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input, use row,col")
			continue
		}
		if !m.IsValid(g.Board.Size()) || g.Board.At(m) != Empty {
			fmt.Fprintln(c.out, "Invalid move, try again")
			continue
		}
		return m, nil
	}
}

func (c *Console) askSize() (int, error) {
	for {
		var line, err = c.ask(fmt.Sprintf("Enter board size (min %d, default %d): ", MinSize, c.defaultSize))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return c.defaultSize, nil
		}
		size, err := strconv.Atoi(line)
		if err != nil || size < MinSize {
			fmt.Fprintf(c.out, "Board size must be a number of at least %d\n", MinSize)
			continue
		}
		return size, nil
	}
}

func (c *Console) askMode() (Mode, error) {
	for {
		var line, err = c.ask("Select mode: 1) Human vs Human 2) Human vs AI 3) AI vs AI: ")
		if err != nil {
			return 0, err
		}
		switch line {
		case "1":
			return ModeHumanHuman, nil
		case "2":
			return ModeHumanAI, nil
		case "3":
			return ModeAIAI, nil
		}
		fmt.Fprintln(c.out, "Invalid mode")
	}
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}
