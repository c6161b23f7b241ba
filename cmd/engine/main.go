//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package main

import (
	"flag"
	"net/http"
	"os"
	"runtime"
	"time"

	gologging "github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/config"
	"github.com/ggeorgochess/chessengine/internal/logging"
	"github.com/ggeorgochess/chessengine/internal/movegen"
	"github.com/ggeorgochess/chessengine/internal/openingbook"
	"github.com/ggeorgochess/chessengine/internal/protocol"
	"github.com/ggeorgochess/chessengine/internal/protocol/wsserver"
	"github.com/ggeorgochess/chessengine/internal/search"
	"github.com/ggeorgochess/chessengine/internal/tt"
)

const version = "0.1.0"

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level (critical|error|warning|notice|info|debug)")
	bookPath := flag.String("bookpath", "", "path to an opening book file (line-oriented coordinate games)")
	posFile := flag.String("posfile", "", "path to a position file to load instead of the standard start position")
	perft := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	fen := flag.String("fen", board.StartFEN, "FEN used by -perft and -nps")
	nps := flag.Int("nps", 0, "run a fixed-time nodes-per-second benchmark for N seconds and exit")
	versionFlag := flag.Bool("version", false, "print version info and exit")
	wsAddr := flag.String("ws", "", "if set, serve the line protocol over websockets at this address instead of stdio")
	cpuProfile := flag.Bool("cpuprofile", false, "wrap execution in a CPU profile (writes to ./profile)")
	flag.Parse()

	if *versionFlag {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("./profile")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logLvl != "" {
		if lvl, err := gologging.LogLevel(*logLvl); err == nil {
			logging.SetLevel(logging.Engine, lvl)
		} else {
			logging.Engine.Warningf("unknown log level %q: %v", *logLvl, err)
		}
	}

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	if *nps != 0 {
		runNPS(*fen, *nps)
		return
	}

	ttSizeMB := config.Settings.Search.TTSizeMB
	pawnTTMB := config.Settings.Search.PawnTTMB

	if *wsAddr != "" {
		http.HandleFunc("/engine", wsserver.Handler(ttSizeMB, pawnTTMB))
		logging.Engine.Infof("serving websocket protocol on %s/engine", *wsAddr)
		if err := http.ListenAndServe(*wsAddr, nil); err != nil {
			logging.Engine.Criticalf("websocket server failed: %v", err)
			os.Exit(1)
		}
		return
	}

	engine := protocol.New(os.Stdout, ttSizeMB, pawnTTMB)
	bp := *bookPath
	if bp == "" {
		bp = config.Settings.Search.BookPath
	}
	engine.LoadBookFile(bp)
	if *posFile != "" {
		data, err := os.ReadFile(*posFile)
		if err != nil {
			logging.Engine.Criticalf("position file %q: %v", *posFile, err)
			os.Exit(1)
		}
		engine.LoadPositionFile(string(data))
	}

	os.Exit(engine.Run(os.Stdin))
}

func runPerft(fen string, depth int) {
	b := board.NewFromFEN(fen)
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(b, d)
		elapsed := time.Since(start)
		out.Printf("perft %d: %d nodes in %s\n", d, nodes, elapsed)
	}
}

func runNPS(fen string, seconds int) {
	b := board.NewFromFEN(fen)
	tables := tt.NewTables(config.Settings.Search.TTSizeMB, config.Settings.Search.PawnTTMB)
	ctx := search.NewContext(b, tables)
	book := openingbook.New()
	book.LoadInternal()
	outcome := ctx.StartSearch(book, search.Limits{MaxTime: time.Duration(seconds) * time.Second}, nil)
	out.Printf("nodes: %d, nps: %d, best: %s\n", ctx.Nodes, uint64(float64(ctx.Nodes)/float64(seconds)), outcome.BestMove)
}

func printVersionInfo() {
	out.Printf("chessengine %s\n", version)
	out.Println("Environment:")
	out.Printf("  Go version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
