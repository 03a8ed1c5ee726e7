package common

import (
	"fmt"
	"strings"
)

// Board is a square grid of cells stored row-major.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// ParseBoard builds a board from rows of '.', 'X' and 'O'. Spaces are ignored.
func ParseBoard(rows []string) (*Board, error) {
	var b = NewBoard(len(rows))
	for row, line := range rows {
		var col = 0
		for _, ch := range line {
			if ch == ' ' {
				continue
			}
			var cell, ok = ParseCell(ch)
			if !ok {
				return nil, fmt.Errorf("%w: row %d: unexpected %q", ErrBadBoard, row, ch)
			}
			if col >= b.size {
				return nil, fmt.Errorf("%w: row %d is longer than %d", ErrBadBoard, row, b.size)
			}
			b.Set(row, col, cell)
			col++
		}
		if col != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadBoard, row, col, b.size)
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Get(row, col int) Cell {
	return b.cells[row*b.size+col]
}

func (b *Board) At(m Move) Cell {
	return b.cells[m.Row*b.size+m.Col]
}

// Set writes a cell without any checks. The search relies on it for place/undo.
func (b *Board) Set(row, col int, c Cell) {
	b.cells[row*b.size+col] = c
}

func (b *Board) Remove(m Move) {
	b.cells[m.Row*b.size+m.Col] = Empty
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Play is the checked placement used by game loops.
func (b *Board) Play(m Move, c Cell) error {
	if !m.IsValid(b.size) {
		return fmt.Errorf("play %v: %w", m, ErrOutOfRange)
	}
	if b.At(m) != Empty {
		return fmt.Errorf("play %v: %w", m, ErrOccupied)
	}
	b.Set(m.Row, m.Col, c)
	return nil
}

func (b *Board) Clone() *Board {
	var clone = &Board{
		size:  b.size,
		cells: make([]Cell, len(b.cells)),
	}
	copy(clone.cells, b.cells)
	return clone
}

func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) StoneCount() int {
	var count = 0
	for _, c := range b.cells {
		if c != Empty {
			count++
		}
	}
	return count
}

func (b *Board) IsEmpty() bool {
	for _, c := range b.cells {
		if c != Empty {
			return false
		}
	}
	return true
}

func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b *Board) Center() Move {
	return Move{Row: b.size / 2, Col: b.size / 2}
}

// EmptyCells returns all empty cells in row-major order.
func (b *Board) EmptyCells() []Move {
	var result []Move
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.Get(row, col) == Empty {
				result = append(result, Move{Row: row, Col: col})
			}
		}
	}
	return result
}

// String renders the board with column and row indices.
func (b *Board) String() string {
	var sb = &strings.Builder{}
	sb.WriteString("   ")
	for col := 0; col < b.size; col++ {
		fmt.Fprintf(sb, "%2d ", col)
	}
	sb.WriteString("\n")
	for row := 0; row < b.size; row++ {
		fmt.Fprintf(sb, "%2d ", row)
		for col := 0; col < b.size; col++ {
			fmt.Fprintf(sb, " %v ", b.Get(row, col))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
