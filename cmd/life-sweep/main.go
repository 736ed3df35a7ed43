// Command life-sweep runs many seeds of the same board headlessly and
// reports how each population fared: final count, extinction tick, and
// the tick stagnation set in. Seeds run in parallel; each simulation is
// still strictly single-threaded per tick.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
	"lifegrid/internal/render"
)

type seedResult struct {
	seed        int64
	finalPop    int
	avgPop      float64
	extinctAt   int
	stagnantAt  int
	generations int
}

func main() {
	rows := flag.Int("rows", 64, "board rows")
	cols := flag.Int("cols", 64, "board columns")
	wrap := flag.Bool("wrap", true, "wrap edges toroidally")
	patternName := flag.String("pattern", "random", "initial pattern name")
	steps := flag.Int("steps", 500, "ticks to simulate per seed")
	seeds := flag.Int("seeds", 16, "number of seeds to evaluate")
	baseSeed := flag.Int64("seed", 1, "first seed; later seeds increment from it")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulations")
	showBest := flag.Bool("show-best", false, "print the final board of the densest seed")
	flag.Parse()

	factory, ok := pattern.Lookup(*patternName)
	if !ok {
		log.Fatalf("unknown pattern %q (available: %s)", *patternName, strings.Join(pattern.Names(), ", "))
	}
	cfg := life.Config{Rows: *rows, Cols: *cols, CellSize: 1, Wrap: *wrap}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var (
		mu      sync.Mutex
		results []seedResult
	)
	var eg errgroup.Group
	eg.SetLimit(*workers)
	for i := 0; i < *seeds; i++ {
		seed := *baseSeed + int64(i)
		eg.Go(func() error {
			res, err := runSeed(cfg, factory, seed, *steps)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	if len(results) == 0 {
		log.Fatal("no seeds evaluated")
	}
	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })

	fmt.Printf("%-12s %-10s %-10s %-12s %-12s\n", "seed", "final", "avg", "extinct@", "stagnant@")
	best := results[0]
	for _, r := range results {
		fmt.Printf("%-12d %-10d %-10.1f %-12s %-12s\n",
			r.seed, r.finalPop, r.avgPop, tickLabel(r.extinctAt), tickLabel(r.stagnantAt))
		if r.finalPop > best.finalPop {
			best = r
		}
	}
	fmt.Printf("\nbest seed %d with %d live cells after %d ticks\n", best.seed, best.finalPop, best.generations)

	if *showBest {
		world, err := replaySeed(cfg, factory, best.seed, best.generations)
		if err != nil {
			log.Fatal(err)
		}
		if err := render.WriteText(os.Stdout, world.View()); err != nil {
			log.Fatal(err)
		}
	}
}

// runSeed simulates one seed for up to steps ticks, stopping early on
// extinction or stagnation.
func runSeed(cfg life.Config, factory pattern.Factory, seed int64, steps int) (seedResult, error) {
	world, err := life.Initialize(cfg, factory(cfg, seed))
	if err != nil {
		return seedResult{}, err
	}
	ctrl := life.NewController(world, nil)
	if err := ctrl.Start(); err != nil {
		return seedResult{}, err
	}

	res := seedResult{seed: seed, extinctAt: -1, stagnantAt: -1}
	for i := 0; i < steps; i++ {
		if err := ctrl.Tick(); err != nil {
			return seedResult{}, err
		}
		stats := ctrl.Stats()
		if res.extinctAt < 0 && stats.Extinct() {
			res.extinctAt = ctrl.Generation()
			break
		}
		if res.stagnantAt < 0 && stats.Stagnant() {
			res.stagnantAt = ctrl.Generation()
			break
		}
	}
	res.finalPop = ctrl.Stats().Population
	res.avgPop = ctrl.Stats().AveragePopulation
	res.generations = ctrl.Generation()
	return res, nil
}

// replaySeed reruns a seed for the recorded number of ticks so the final
// board can be printed.
func replaySeed(cfg life.Config, factory pattern.Factory, seed int64, ticks int) (*life.World, error) {
	world, err := life.Initialize(cfg, factory(cfg, seed))
	if err != nil {
		return nil, err
	}
	ctrl := life.NewController(world, nil)
	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	for i := 0; i < ticks; i++ {
		if err := ctrl.Tick(); err != nil {
			return nil, err
		}
	}
	return world, nil
}

func tickLabel(tick int) string {
	if tick < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", tick)
}
