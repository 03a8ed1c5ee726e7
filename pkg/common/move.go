package common

import (
	"fmt"
	"strconv"
	"strings"
)

type Move struct {
	Row int
	Col int
}

var MoveEmpty = Move{Row: -1, Col: -1}

func (m Move) IsValid(size int) bool {
	return m.Row >= 0 && m.Row < size && m.Col >= 0 && m.Col < size
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "none"
	}
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// ParseMove parses "row,col".
func ParseMove(s string) (Move, error) {
	var fields = strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != 2 {
		return MoveEmpty, fmt.Errorf("parse move %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return MoveEmpty, fmt.Errorf("parse move %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return MoveEmpty, fmt.Errorf("parse move %q: %w", s, err)
	}
	return Move{Row: row, Col: col}, nil
}
