package common

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseBoard(t *testing.T) {
	var b, err = ParseBoard([]string{
		"X....",
		".O...",
		"..X..",
		".....",
		"....O",
	})
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 5 {
		t.Error("size", b.Size())
	}
	if b.Get(0, 0) != Black || b.Get(1, 1) != White || b.Get(2, 2) != Black || b.Get(4, 4) != White {
		t.Error("bad cells\n" + b.String())
	}
	if b.StoneCount() != 4 {
		t.Error("stone count", b.StoneCount())
	}

	for _, rows := range [][]string{
		{"X..", "...", ".."},
		{"X..", ".Z.", "..."},
		{"X...", "...", "..."},
	} {
		if _, err := ParseBoard(rows); !errors.Is(err, ErrBadBoard) {
			t.Error(rows, err)
		}
	}
}

func TestPlay(t *testing.T) {
	var b = NewBoard(DefaultSize)
	if err := b.Play(Move{Row: 7, Col: 7}, Black); err != nil {
		t.Fatal(err)
	}
	if err := b.Play(Move{Row: 7, Col: 7}, White); !errors.Is(err, ErrOccupied) {
		t.Error(err)
	}
	if err := b.Play(Move{Row: 15, Col: 0}, White); !errors.Is(err, ErrOutOfRange) {
		t.Error(err)
	}
	if err := b.Play(Move{Row: 0, Col: -1}, White); !errors.Is(err, ErrOutOfRange) {
		t.Error(err)
	}
	if b.StoneCount() != 1 {
		t.Error("stone count", b.StoneCount())
	}
}

func TestClone(t *testing.T) {
	var b = NewBoard(9)
	b.Set(4, 4, Black)
	var clone = b.Clone()
	if !clone.Equal(b) {
		t.Fatal("clone differs")
	}
	clone.Set(0, 0, White)
	if b.Get(0, 0) != Empty {
		t.Error("clone shares cells")
	}
	if clone.Equal(b) {
		t.Error("Equal ignores cells")
	}
}

func TestParseMove(t *testing.T) {
	var tests = []struct {
		s    string
		move Move
		ok   bool
	}{
		{"7,7", Move{Row: 7, Col: 7}, true},
		{" 3 , 12 ", Move{Row: 3, Col: 12}, true},
		{"3;4", MoveEmpty, false},
		{"a,1", MoveEmpty, false},
		{"1,2,3", MoveEmpty, false},
	}
	for _, test := range tests {
		var m, err = ParseMove(test.s)
		if (err == nil) != test.ok {
			t.Error(test.s, err)
			continue
		}
		if test.ok && m != test.move {
			t.Error(test.s, m)
		}
	}
}

func TestCheckWin(t *testing.T) {
	var tests = []struct {
		name   string
		stones []Move
		win    bool
	}{
		{"horizontal", line(3, 2, 0, 1, 5), true},
		{"vertical", line(0, 14, 1, 0, 5), true},
		{"diagonal", line(10, 10, 1, 1, 5), true},
		{"anti-diagonal", line(2, 6, 1, -1, 5), true},
		{"overline", line(7, 0, 0, 1, 6), true},
		{"four", line(7, 7, 0, 1, 4), false},
		{"broken", append(line(7, 0, 0, 1, 2), line(7, 3, 0, 1, 3)...), false},
	}
	for _, test := range tests {
		var b = NewBoard(DefaultSize)
		for _, m := range test.stones {
			b.Set(m.Row, m.Col, White)
		}
		if CheckWin(b, White) != test.win {
			t.Error(test.name, "white", !test.win)
		}
		if CheckWin(b, Black) {
			t.Error(test.name, "black wins without stones")
		}
	}
}

func TestCheckWinMatchesLongestRun(t *testing.T) {
	var rnd = rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		var size = 5 + rnd.Intn(6)
		var b = NewBoard(size)
		var density = 0.3 + 0.5*rnd.Float64()
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if rnd.Float64() < density {
					if rnd.Intn(2) == 0 {
						b.Set(row, col, Black)
					} else {
						b.Set(row, col, White)
					}
				}
			}
		}
		for _, side := range []Cell{Black, White} {
			var want = longestRun(b, side) >= WinLength
			if CheckWin(b, side) != want {
				t.Fatalf("side %v want %v\n%v", side, want, b)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	var b = NewBoard(DefaultSize)
	if IsTerminal(b) {
		t.Error("empty board is terminal")
	}
	var full = drawnBoard(DefaultSize)
	if CheckWin(full, Black) || CheckWin(full, White) {
		t.Fatal("drawn board has a winner\n" + full.String())
	}
	if !IsTerminal(full) || Winner(full) != Empty {
		t.Error("full board is not terminal")
	}
	for _, m := range line(0, 0, 1, 1, 5) {
		b.Set(m.Row, m.Col, Black)
	}
	if !IsTerminal(b) || Winner(b) != Black {
		t.Error("won board is not terminal")
	}
}

func TestCountForward(t *testing.T) {
	var b = NewBoard(DefaultSize)
	for _, m := range []Move{{7, 4}, {7, 5}, {7, 7}} {
		b.Set(m.Row, m.Col, White)
	}
	b.Set(7, 6, Black)
	if n := CountForward(b, 7, 4, 0, 1, White); n != 3 {
		t.Error(n)
	}
	if n := CountForward(b, 7, 12, 0, 1, White); n != 0 {
		t.Error(n)
	}
}

func line(row, col, dr, dc, n int) []Move {
	var result []Move
	for k := 0; k < n; k++ {
		result = append(result, Move{Row: row + k*dr, Col: col + k*dc})
	}
	return result
}

func longestRun(b *Board, side Cell) int {
	var best = 0
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			for _, dir := range Directions {
				var n = 0
				for r, c := row, col; b.InBounds(r, c) && b.Get(r, c) == side; r, c = r+dir[0], c+dir[1] {
					n++
				}
				best = Max(best, n)
			}
		}
	}
	return best
}

// drawnBoard fills the board in 2-wide stripes so that no side has more than two in a row.
func drawnBoard(size int) *Board {
	var b = NewBoard(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if (col/2+row)%2 == 0 {
				b.Set(row, col, Black)
			} else {
				b.Set(row, col, White)
			}
		}
	}
	return b
}
