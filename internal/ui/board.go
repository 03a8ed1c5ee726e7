// Package ui draws a gomoku board in the terminal with tview.
package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/GomokuGo/internal/config"
	"github.com/ChizhovVadim/GomokuGo/internal/game"
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

// Searcher is the part of engine.Engine the board needs.
type Searcher interface {
	Search(ctx context.Context, params engine.SearchParams) (engine.SearchInfo, error)
}

type BoardUI struct {
	Box     *tview.Box
	hint    *tview.TextView
	symbols config.Symbols
	logger  zerolog.Logger
	game    *game.Game
	eng     Searcher
	human   Cell
	selRow  int
	selCol  int
	// generation changes on new game and undo so late engine replies are dropped.
	generation int
	thinking   bool
	cancel     context.CancelFunc
	queue      func(f func())
	quit       func()
}

// NewBoardUI creates a board for a game against eng, or between two humans when eng is nil.
func NewBoardUI(app *tview.Application, hint *tview.TextView, symbols config.Symbols,
	size int, eng Searcher, human Cell, logger zerolog.Logger) *BoardUI {
	var board = &BoardUI{
		Box:     tview.NewBox(),
		hint:    hint,
		symbols: symbols,
		logger:  logger,
		eng:     eng,
		human:   human,
		cancel:  func() {},
		queue: func(f func()) {
			app.QueueUpdateDraw(f)
		},
		quit: app.Stop,
	}
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetInputCapture(board.handleKey)
	board.NewGame(size)
	return board
}

func (g *BoardUI) Game() *game.Game {
	return g.game
}

func (g *BoardUI) NewGame(size int) {
	g.cancel()
	g.generation++
	g.thinking = false
	g.game = game.New(size)
	g.selRow, g.selCol = size/2, size/2
	g.refreshHint()
	g.engineTurn()
}

func (g *BoardUI) MoveSelection(dRow, dCol int) {
	var size = g.game.Board.Size()
	var row, col = g.selRow + dRow, g.selCol + dCol
	if row < 0 || row >= size || col < 0 || col >= size {
		return
	}
	g.selRow, g.selCol = row, col
}

func (g *BoardUI) Selection() Move {
	return Move{Row: g.selRow, Col: g.selCol}
}

// PlayMove plays the selected cell for the human side and lets the engine answer.
func (g *BoardUI) PlayMove() {
	if g.thinking || g.game.IsFinished() {
		return
	}
	if err := g.game.Play(g.Selection()); err != nil {
		g.hint.SetText(fmt.Sprintf("  %v\n%s", err, controls))
		return
	}
	g.refreshHint()
	g.engineTurn()
}

// Undo takes back the last move, or the last pair when playing the engine.
func (g *BoardUI) Undo() {
	g.cancel()
	g.generation++
	g.thinking = false
	if g.game.Undo() != nil {
		g.refreshHint()
		return
	}
	if g.eng != nil && g.game.ToMove != g.human {
		_ = g.game.Undo()
	}
	g.refreshHint()
	g.engineTurn()
}

func (g *BoardUI) engineTurn() {
	if g.eng == nil || g.game.IsFinished() || g.game.ToMove == g.human {
		return
	}
	var ctx, cancel = context.WithCancel(context.Background())
	g.cancel = cancel
	g.thinking = true
	g.refreshHint()

	var generation = g.generation
	var params = engine.SearchParams{Board: g.game.Board.Clone(), Side: g.game.ToMove}
	go func() {
		var info, err = g.eng.Search(ctx, params)
		g.queue(func() {
			if generation != g.generation {
				return
			}
			g.thinking = false
			if err == nil && info.Found {
				err = g.game.Play(info.Move)
			}
			if err != nil {
				g.logger.Error().Err(err).Msg("engine-move-failed")
			}
			g.refreshHint()
		})
	}()
}

func (g *BoardUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		g.MoveSelection(-1, 0)
	case tcell.KeyDown:
		g.MoveSelection(1, 0)
	case tcell.KeyLeft:
		g.MoveSelection(0, -1)
	case tcell.KeyRight:
		g.MoveSelection(0, 1)
	case tcell.KeyEnter:
		g.PlayMove()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			g.MoveSelection(0, -1)
		case 'j':
			g.MoveSelection(1, 0)
		case 'k':
			g.MoveSelection(-1, 0)
		case 'l':
			g.MoveSelection(0, 1)
		case ' ':
			g.PlayMove()
		case 'u':
			g.Undo()
		case 'n':
			g.NewGame(g.game.Board.Size())
		case 'q':
			g.cancel()
			g.quit()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

const controls = `
  hjkl/↑↓←→ move   ⏎ play
  u undo   n new game   q quit`

func (g *BoardUI) refreshHint() {
	var status string
	switch {
	case g.game.Status == game.StatusWon:
		status = fmt.Sprintf("  %v wins!", g.game.Winner)
	case g.game.Status == game.StatusDraw:
		status = "  Draw"
	case g.thinking:
		status = "  Thinking..."
	default:
		status = fmt.Sprintf("  %v to move", g.game.ToMove)
	}
	if last := g.game.LastMove(); last != MoveEmpty {
		status += fmt.Sprintf("   last %v", last)
	}
	g.hint.SetText(status + "\n" + controls)
}

func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	var b = g.game.Board
	var size = b.Size()
	var left, top = x + 3, y + 1
	var style = tcell.StyleDefault
	var highlight = style.Reverse(true)
	var last = g.game.LastMove()

	for col := 0; col < size; col++ {
		tview.Print(screen, fmt.Sprintf("%-2d", col), left+col*2, y, 2, tview.AlignLeft, tcell.ColorDefault)
	}
	for row := 0; row < size; row++ {
		tview.Print(screen, fmt.Sprintf("%2d", row), x, top+row, 2, tview.AlignRight, tcell.ColorDefault)
		for col := 0; col < size; col++ {
			var cellStyle = style
			if row == g.selRow && col == g.selCol {
				cellStyle = highlight
			} else if last == (Move{Row: row, Col: col}) {
				cellStyle = style.Bold(true)
			}
			var stone = b.Get(row, col)
			screen.SetContent(left+col*2, top+row, g.cellRune(row, col), nil, cellStyle)
			var connector = '─'
			if col == size-1 || stone != Empty || b.Get(row, col+1) != Empty {
				connector = ' '
			}
			screen.SetContent(left+col*2+1, top+row, connector, nil, style)
		}
	}
	return x, y, size*2 + 3, size + 1
}

func (g *BoardUI) cellRune(row, col int) rune {
	switch g.game.Board.Get(row, col) {
	case Black:
		return g.symbols.Black
	case White:
		return g.symbols.White
	}
	if row == g.selRow && col == g.selCol {
		return g.symbols.Cursor
	}
	// the plain cross means grid lines
	if g.symbols.Empty == '┼' {
		return gridRune(row, col, g.game.Board.Size())
	}
	return g.symbols.Empty
}

// gridRune returns the box-drawing character for an empty intersection.
func gridRune(row, col, size int) rune {
	var isTop = row == 0
	var isBottom = row == size-1
	var isLeft = col == 0
	var isRight = col == size-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}
