package engine

import (
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

// RelevantMoves returns the empty cells within radius (Chebyshev) of a stone.
// The empty board yields the centre only; if no cell qualifies, every empty cell is returned.
func RelevantMoves(b *Board, radius int) []Move {
	if b.IsEmpty() {
		return []Move{b.Center()}
	}
	var n = b.Size()
	var result []Move
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.Get(row, col) == Empty && hasNeighbour(b, row, col, radius) {
				result = append(result, Move{Row: row, Col: col})
			}
		}
	}
	if len(result) == 0 {
		return b.EmptyCells()
	}
	return result
}

func hasNeighbour(b *Board, row, col, radius int) bool {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			var r, c = row + dr, col + dc
			if b.InBounds(r, c) && b.Get(r, c) != Empty {
				return true
			}
		}
	}
	return false
}
