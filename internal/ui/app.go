package ui

import (
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/GomokuGo/internal/config"
	. "github.com/ChizhovVadim/GomokuGo/pkg/common"
)

// Run shows the board until the user quits. With a nil engine both sides are human.
func Run(cfg *config.Config, eng Searcher, human Cell, logger zerolog.Logger) error {
	var app = tview.NewApplication()
	var hint = tview.NewTextView()
	var board = NewBoardUI(app, hint, cfg.Symbols, cfg.BoardSize, eng, human, logger)

	var frame = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(board.Box, cfg.BoardSize+2, 0, true).
		AddItem(hint, 4, 0, false)
	frame.SetBorder(true).SetTitle(" gomoku ")

	logger.Info().Int("size", cfg.BoardSize).Str("human", human.String()).Msg("tui-started")
	return app.SetRoot(frame, true).SetFocus(board.Box).Run()
}
