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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	golog "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/galhamama/chess-project/config"
	"github.com/galhamama/chess-project/engine"
	"github.com/galhamama/chess-project/logging"
	"github.com/galhamama/chess-project/movegen"
	"github.com/galhamama/chess-project/openingbook"
	"github.com/galhamama/chess-project/persistence"
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/search"
)

const engineVersion = "1.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "", "path to configuration settings file (TOML)")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	bookPath := flag.String("bookpath", "", "path to the opening book JSON file")
	perft := flag.Int("perft", 0, "runs perft to the given depth from -fen and exits")
	fen := flag.String("fen", position.StartFEN, "FEN of the position to use for -perft or -play")
	difficulty := flag.Int("difficulty", 2, "difficulty level {1=easy, 2=normal, 3=hard}")
	save := flag.String("save", "", "path to write a game snapshot to after -play finishes")
	load := flag.String("load", "", "path to a saved game snapshot to resume from, overriding -fen")
	play := flag.Bool("play", false, "runs the engine against itself from -fen (or -load) until the game ends")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.Setup(*configFile)

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	log := logging.GetLog()

	if *perft != 0 {
		var p movegen.Perft
		p.Run(*fen, *perft)
		return
	}

	if *play {
		runSelfPlay(*fen, *load, *save, *difficulty, log)
		return
	}

	out.Println("nothing to do - pass -perft, -play or -version")
	flag.Usage()
}

// runSelfPlay drives the engine against itself to completion, optionally
// resuming from a saved snapshot and optionally saving the final state.
func runSelfPlay(fen, loadPath, savePath string, difficulty int, log *golog.Logger) {
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -fen:", err)
		os.Exit(1)
	}
	if loadPath != "" {
		loaded, _, _, err := persistence.Load(loadPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not load", loadPath, ":", err)
			os.Exit(1)
		}
		pos = loaded
	}

	book := openingbook.NewBook()
	if config.Settings.Search.BookPath != "" {
		book.Load(config.Settings.Search.BookPath)
	}

	d := engine.New(pos, book)
	preset := config.Difficulty(difficulty)
	limits := search.Limits{
		MaxDepth:  preset.MaxDepth,
		TimeLimit: time.Duration(preset.TimeLimitSecs * float64(time.Second)),
	}

	// the fifty-move rule ends self-play games the engine itself would
	// otherwise shuffle through forever.
	for !d.IsGameOver() && d.Position().HalfMoveClock() < 100 {
		result := d.FindAndApplyMove(limits)
		out.Printf("%d. %s (depth %d, score %d)\n",
			len(d.MoveHistory()), result.BestMove.String(), result.Depth, result.Score)
	}
	out.Println("game over after", len(d.MoveHistory()), "ply")

	if savePath != "" {
		ai := persistence.AISettings{
			AIDepth:     preset.MaxDepth,
			AITimeLimit: preset.TimeLimitSecs,
			PlayerOne:   "engine",
			PlayerTwo:   "engine",
		}
		if err := persistence.Save(d.Position(), ai, float64(time.Now().Unix()), savePath); err != nil {
			log.Error("could not save game: ", err)
		}
	}
}

func printVersionInfo() {
	out.Printf("chessgo %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
