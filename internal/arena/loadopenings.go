package arena

import (
	"context"
	"math/rand"

	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

func loadOpenings(
	ctx context.Context,
	config Config,
	gameInfos chan<- gameInfo,
) error {

	var rnd = rand.New(rand.NewSource(config.Seed))

	for i := 0; i < config.Openings; i++ {
		var opening = randomOpening(rnd, config.BoardSize, config.OpeningStones)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsBlack: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsBlack: false, gameNumber: 1 + 2*i + 1}:
		}
	}

	return nil
}

// randomOpening picks distinct cells in the 5x5 square around the centre.
// Stones are played alternately starting with black.
func randomOpening(rnd *rand.Rand, size, stones int) []Move {
	var center = size / 2
	var cells []Move
	for row := Max(0, center-2); row <= Min(size-1, center+2); row++ {
		for col := Max(0, center-2); col <= Min(size-1, center+2); col++ {
			cells = append(cells, Move{Row: row, Col: col})
		}
	}
	rnd.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	// four stones of one colour cannot make five
	stones = Min(stones, 2*(WinLength-1))
	return cells[:stones]
}
