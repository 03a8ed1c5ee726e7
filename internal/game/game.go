package game

import (
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

type Status int

const (
	StatusActive Status = iota
	StatusWon
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "active"
	}
}

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrGameFinished Error = "game is finished"
	ErrNoMoves      Error = "no moves to undo"
)

// Game is the live position shared by the front-ends. Black moves first.
type Game struct {
	Board   *Board
	ToMove  Cell
	Status  Status
	Winner  Cell
	History []Move
}

func New(size int) *Game {
	return &Game{
		Board:  NewBoard(size),
		ToMove: Black,
		Status: StatusActive,
		Winner: Empty,
	}
}

// Play places a stone for the side to move and updates the status.
func (g *Game) Play(m Move) error {
	if g.IsFinished() {
		return ErrGameFinished
	}
	if err := g.Board.Play(m, g.ToMove); err != nil {
		return err
	}
	g.History = append(g.History, m)

	if CheckWin(g.Board, g.ToMove) {
		g.Status = StatusWon
		g.Winner = g.ToMove
		return nil
	}
	if g.Board.IsFull() {
		g.Status = StatusDraw
		return nil
	}
	g.ToMove = g.ToMove.Opponent()
	return nil
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	if len(g.History) == 0 {
		return ErrNoMoves
	}
	var m = g.History[len(g.History)-1]
	g.History = g.History[:len(g.History)-1]
	g.ToMove = g.Board.At(m)
	g.Board.Remove(m)
	g.Status = StatusActive
	g.Winner = Empty
	return nil
}

func (g *Game) LastMove() Move {
	if len(g.History) == 0 {
		return MoveEmpty
	}
	return g.History[len(g.History)-1]
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
