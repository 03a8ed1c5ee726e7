package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/GomokuGo/internal/config"
	"github.com/ChizhovVadim/GomokuGo/internal/console"
	"github.com/ChizhovVadim/GomokuGo/internal/logging"
	"github.com/ChizhovVadim/GomokuGo/internal/ui"
	"github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

/*
GomokuGo Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name    = "GomokuGo"
	logFile = "gomoku/gomoku.log"
)

var (
	versionName   = "dev"
	buildDate     = "(null)"
	gitRevision   = "(null)"
	flgTUI        bool
	flgSize       int
	flgDifficulty int
	flgHuman      string
	flgSaveConfig bool
)

func main() {
	flag.BoolVar(&flgTUI, "tui", false, "play on the full screen board")
	flag.IntVar(&flgSize, "size", 0, "board size, overrides the config")
	flag.IntVar(&flgDifficulty, "difficulty", 0, "engine difficulty 1-4, overrides the config")
	flag.StringVar(&flgHuman, "human", "x", "side of the human on the full screen board: x, o or both")
	flag.BoolVar(&flgSaveConfig, "saveconfig", false, "save the effective config")
	flag.Parse()

	var err = run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg, err = config.InitConfig()
	if err != nil {
		return err
	}
	if flgSize != 0 {
		cfg.BoardSize = flgSize
	}
	if flgDifficulty != 0 {
		cfg.Difficulty = flgDifficulty
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flgSaveConfig {
		if err := cfg.Save(); err != nil {
			return err
		}
	}

	var logOutput io.Writer = os.Stderr
	if flgTUI {
		// the terminal belongs to the board
		path, err := xdg.StateFile(logFile)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOutput = f
	}
	logger, err := logging.New(logOutput, cfg.LogLevel)
	if err != nil {
		return err
	}

	logger.Info().
		Str("name", name).
		Str("version", versionName).
		Str("build-date", buildDate).
		Str("git-revision", gitRevision).
		Str("runtime-version", runtime.Version()).
		Str("goarch", runtime.GOARCH).
		Str("goos", runtime.GOOS).
		Int("num-cpu", runtime.NumCPU()).
		Msg("started")

	if flgTUI {
		return runTUI(cfg, logger)
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	var c = console.New(os.Stdin, os.Stdout, logger, cfg.BoardSize,
		time.Duration(cfg.TimeBudgetMs)*time.Millisecond)
	return c.Run(ctx)
}

func runTUI(cfg *config.Config, logger zerolog.Logger) error {
	var eng = engine.NewEngine(cfg.EngineOptions())
	eng.SetLogger(logger)
	switch strings.ToLower(flgHuman) {
	case "x":
		return ui.Run(cfg, eng, common.Black, logger)
	case "o":
		return ui.Run(cfg, eng, common.White, logger)
	case "both":
		return ui.Run(cfg, nil, common.Black, logger)
	}
	return fmt.Errorf("unknown side %q", flgHuman)
}
