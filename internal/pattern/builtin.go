package pattern

import (
	"lifegrid/internal/life"
	"lifegrid/pkg/core"
)

// randomDensity is the share of cells seeded alive by the random pattern.
const randomDensity = 0.25

func init() {
	Register("blank", func(life.Config, int64) life.PatternFunc {
		return func(int, int) bool { return false }
	})
	Register("random", randomPattern)
	Register("blinker", blinkerPattern)
	Register("block", blockPattern)
	Register("glider", gliderPattern)
}

// randomPattern seeds cells alive at a fixed density, deterministically
// from the seed. The board is materialized up front so the result does
// not depend on the order Initialize queries cells in.
func randomPattern(cfg life.Config, seed int64) life.PatternFunc {
	cells := make([]bool, cfg.Rows*cfg.Cols)
	core.NewRNG(seed).FillBool(cells, randomDensity)
	return func(row, col int) bool {
		return cells[row*cfg.Cols+col]
	}
}

// blinkerPattern centers a horizontal period-2 oscillator.
func blinkerPattern(cfg life.Config, _ int64) life.PatternFunc {
	r := cfg.Rows / 2
	c := cfg.Cols / 2
	return cellSet(cfg, [][2]int{{r, c - 1}, {r, c}, {r, c + 1}})
}

// blockPattern centers a 2x2 still life.
func blockPattern(cfg life.Config, _ int64) life.PatternFunc {
	r := cfg.Rows / 2
	c := cfg.Cols / 2
	return cellSet(cfg, [][2]int{{r, c}, {r, c + 1}, {r + 1, c}, {r + 1, c + 1}})
}

// gliderPattern places a glider near the top-left corner, headed
// down-right.
func gliderPattern(cfg life.Config, _ int64) life.PatternFunc {
	return cellSet(cfg, [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}})
}

// cellSet builds a seed from explicit coordinates, ignoring any that fall
// off the board.
func cellSet(cfg life.Config, coords [][2]int) life.PatternFunc {
	alive := make(map[[2]int]bool, len(coords))
	for _, rc := range coords {
		if rc[0] >= 0 && rc[0] < cfg.Rows && rc[1] >= 0 && rc[1] < cfg.Cols {
			alive[rc] = true
		}
	}
	return func(row, col int) bool {
		return alive[[2]int{row, col}]
	}
}
