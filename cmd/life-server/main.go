package main

import (
	"flag"
	"log"
	"net/http"
	"strings"

	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
	"lifegrid/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	rows := flag.Int("rows", 64, "board rows")
	cols := flag.Int("cols", 64, "board columns")
	cellSize := flag.Float64("cell-size", 1, "cell size in world units")
	wrap := flag.Bool("wrap", true, "wrap edges toroidally")
	patternName := flag.String("pattern", "random", "initial pattern name")
	seed := flag.Int64("seed", 1337, "seed for randomized patterns")
	tps := flag.Int("tps", 10, "ticks streamed per second")
	maxTicks := flag.Int("max-ticks", 0, "stop a session after this many ticks (0 = unlimited)")
	flag.Parse()

	if _, ok := pattern.Lookup(*patternName); !ok {
		log.Fatalf("unknown pattern %q (available: %s)", *patternName, strings.Join(pattern.Names(), ", "))
	}

	board := life.Config{Rows: *rows, Cols: *cols, CellSize: *cellSize, Wrap: *wrap}
	if err := board.Validate(); err != nil {
		log.Fatal(err)
	}

	srv := server.New(server.Options{
		Board:    board,
		Pattern:  *patternName,
		Seed:     *seed,
		TPS:      *tps,
		MaxTicks: *maxTicks,
	})

	log.Printf("streaming %dx%d board on %s/stream", *rows, *cols, *addr)
	log.Fatal(http.ListenAndServe(*addr, srv.Handler()))
}
