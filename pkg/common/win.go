package common

// Directions scanned for lines: horizontal, vertical and both diagonals.
var Directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin reports whether side has WinLength stones in a row anywhere on the board.
func CheckWin(b *Board, side Cell) bool {
	var n = b.size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.Get(row, col) != side {
				continue
			}
			for _, dir := range Directions {
				if lineFrom(b, row, col, dir[0], dir[1], side) {
					return true
				}
			}
		}
	}
	return false
}

func lineFrom(b *Board, row, col, dr, dc int, side Cell) bool {
	var endRow, endCol = row + (WinLength-1)*dr, col + (WinLength-1)*dc
	if !b.InBounds(endRow, endCol) {
		return false
	}
	for k := 1; k < WinLength; k++ {
		if b.Get(row+k*dr, col+k*dc) != side {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the game is over: someone won or no empty cell is left.
func IsTerminal(b *Board) bool {
	return CheckWin(b, Black) || CheckWin(b, White) || b.IsFull()
}

// Winner returns the side owning a winning line or Empty.
func Winner(b *Board) Cell {
	if CheckWin(b, Black) {
		return Black
	}
	if CheckWin(b, White) {
		return White
	}
	return Empty
}

// CountForward counts side's stones among the WinLength cells starting at (row, col)
// in direction (dr, dc), stopping at the board edge.
func CountForward(b *Board, row, col, dr, dc int, side Cell) int {
	var count = 0
	for k := 0; k < WinLength; k++ {
		var r, c = row + k*dr, col + k*dc
		if !b.InBounds(r, c) {
			break
		}
		if b.Get(r, c) == side {
			count++
		}
	}
	return count
}
