package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/ChizhovVadim/GomokuGo/internal/config"
	"github.com/ChizhovVadim/GomokuGo/internal/logging"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
	"github.com/ChizhovVadim/GomokuGo/pkg/pbrain"
)

/*
GomokuGo Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name    = "GomokuGo"
	author  = "Vadim Chizhov"
	country = "RU"
)

var (
	versionName   = "dev"
	buildDate     = "(null)"
	gitRevision   = "(null)"
	flgDifficulty int
)

func main() {
	flag.IntVar(&flgDifficulty, "difficulty", 0, "engine difficulty 1-4, overrides the config")
	flag.Parse()

	var cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}
	if flgDifficulty != 0 {
		cfg.Difficulty = flgDifficulty
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	// stdout carries the protocol
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		panic(err)
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

	var eng = engine.NewEngine(cfg.EngineOptions())
	eng.SetLogger(logger)

	var protocol = pbrain.New(name, author, versionName, country, eng,
		[]pbrain.Option{
			&pbrain.MillisecondsOption{Name: "timeout_turn", Value: &eng.Options.TimeBudget},
			&pbrain.IntOption{Name: "depth", Min: 1, Max: 6, Value: &eng.Options.Config.MaxDepth},
			&pbrain.BoolOption{Name: "pruning", Value: &eng.Options.UsePruning},
		},
	)

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := protocol.Run(ctx, logger); err != nil {
		logger.Error().Err(err).Msg("protocol-stopped")
	}
}
