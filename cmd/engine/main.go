/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command engine picks one move for a given position and prints it. It
// has no UCI loop -- that outer protocol surface is out of scope here --
// just a single search invocation driven entirely from flags.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rkane/bitchess/internal/attacks"
	"github.com/rkane/bitchess/internal/config"
	"github.com/rkane/bitchess/internal/logging"
	"github.com/rkane/bitchess/internal/perftsuite"
	"github.com/rkane/bitchess/internal/position"
	"github.com/rkane/bitchess/internal/search"
)

var out = message.NewPrinter(language.English)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", startFEN, "FEN of the position to search")
	movetimeMs := flag.Int("movetime", 0, "search time budget in milliseconds (0 uses the configured default)")
	depth := flag.Int("depth", 0, "alpha-beta search depth (not passed to the search, which deepens until -movetime is spent)")
	useMcts := flag.Bool("mcts", false, "search with MCTS instead of iterative-deepening alpha-beta")
	mctsIterations := flag.Int("mctsiterations", 1000, "number of MCTS iterations, when -mcts is set")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen instead of searching, and exit")
	perftFile := flag.String("perftfile", "", "run a perft reference suite file instead of searching, and exit")
	cpuProfile := flag.Bool("cpuprofile", false, "write a pprof CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	log := logging.GetLog("engine")

	tables := attacks.NewTables()

	if *perftFile != "" {
		result, err := perftsuite.RunFile(tables, *perftFile)
		if err != nil {
			log.Errorf("running perft suite: %s", err)
			os.Exit(1)
		}
		fmt.Print(result.Summary())
		if result.Failed() > 0 {
			os.Exit(1)
		}
		return
	}

	pos, err := position.FromFEN(tables, *fen)
	if err != nil {
		log.Errorf("invalid FEN %q: %s", *fen, err)
		os.Exit(1)
	}

	if *perftDepth > 0 {
		out.Println("Perft", *perftDepth, "=", perftsuite.Perft(pos, *perftDepth))
		return
	}

	if *useMcts {
		m, root := search.Mcts(pos, *mctsIterations)
		out.Printf("move %s score %.3f visits %d\n", m.String(), root.Score, root.Visits)
		return
	}

	if *depth <= 0 {
		*depth = config.Settings.Search.DefaultDepth
	}
	if *movetimeMs <= 0 {
		*movetimeMs = config.Settings.Search.DefaultTimeBudgetMs
	}

	m, score := search.AbSearch(pos, *movetimeMs)
	out.Printf("move %s score %d\n", m.String(), score)
}
