//
// corvid - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/uci"
)

// version is reported by the "uci" command and the -version flag.
const version = "0.1.0"

var out = message.NewPrinter(language.English)

var logLevels = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level\n(critical|error|warning|notice|info|debug)")
	perft := flag.Int("perft", 0, "runs perft on the given position to the given depth and exits\nuse -fen to provide a position other than the starting one")
	fen := flag.String("fen", board.StartFEN, "fen used by -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof while running")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := logLevels[*logLvl]; found {
		myLogging.SetLevel(lvl)
	}

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	runEngine()
}

// runEngine drives the UCI loop and maps a fatal InvariantViolation (board
// corruption the engine cannot recover from) to exit code 1, per spec.md
// §6/§7; a normal "quit" falls through to main's default exit code 0.
func runEngine() {
	log := myLogging.GetLog("main")
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("fatal: %v", r)
			os.Exit(1)
		}
	}()
	uci.New().Loop()
}

func runPerft(fen string, depth int) {
	b := &board.Board{}
	if err := b.LoadFEN(fen); err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", fen, err)
		os.Exit(1)
	}
	g := movegen.New()
	for d := 1; d <= depth; d++ {
		nodes := g.Perft(b, d)
		out.Printf("perft %d: %d nodes\n", d, nodes)
	}
}

func printVersionInfo() {
	out.Printf("corvid %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
