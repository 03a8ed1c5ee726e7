package common

import "errors"

const (
	WinLength   = 5
	DefaultSize = 15
	MinSize     = WinLength
)

type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

var (
	ErrOutOfRange = errors.New("move out of range")
	ErrOccupied   = errors.New("cell is occupied")
	ErrBadBoard   = errors.New("bad board")
)

func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) IsPlayer() bool {
	return c == Black || c == White
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return "."
	}
}

func ParseCell(ch rune) (Cell, bool) {
	switch ch {
	case '.', '-', '+':
		return Empty, true
	case 'X', 'x':
		return Black, true
	case 'O', 'o':
		return White, true
	}
	return Empty, false
}
