package engine

import (
	"errors"
	"math"
)

const (
	WinScore      = 1_000_000
	DefaultRadius = 1
	valueDraw     = 0
	valueInfinity = math.MaxInt32
)

var (
	ErrBadCandidate  = errors.New("bad candidate move")
	ErrInvalidConfig = errors.New("invalid search config")
	ErrInvalidSide   = errors.New("side must be black or white")

	errSearchAborted = errors.New("search aborted")
)
