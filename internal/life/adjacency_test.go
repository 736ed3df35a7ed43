package life

import (
	"slices"
	"testing"
)

func TestNeighborCountsNonWrap(t *testing.T) {
	cfg := Config{Rows: 4, Cols: 5, CellSize: 1, Wrap: false}
	adj := NewAdjacency(cfg)

	count := func(r, c int) int { return len(adj.Neighbors(r*cfg.Cols + c)) }

	for _, corner := range [][2]int{{0, 0}, {0, 4}, {3, 0}, {3, 4}} {
		if got := count(corner[0], corner[1]); got != 3 {
			t.Fatalf("corner (%d,%d) has %d neighbors, expected 3", corner[0], corner[1], got)
		}
	}
	for _, edge := range [][2]int{{0, 2}, {3, 2}, {1, 0}, {2, 4}} {
		if got := count(edge[0], edge[1]); got != 5 {
			t.Fatalf("edge (%d,%d) has %d neighbors, expected 5", edge[0], edge[1], got)
		}
	}
	for _, inner := range [][2]int{{1, 1}, {2, 3}, {1, 2}} {
		if got := count(inner[0], inner[1]); got != 8 {
			t.Fatalf("interior (%d,%d) has %d neighbors, expected 8", inner[0], inner[1], got)
		}
	}
}

func TestNeighborCountsWrap(t *testing.T) {
	cfg := Config{Rows: 5, Cols: 4, CellSize: 1, Wrap: true}
	adj := NewAdjacency(cfg)
	for id := 0; id < adj.Len(); id++ {
		if got := len(adj.Neighbors(id)); got != 8 {
			t.Fatalf("cell %d has %d neighbors, expected 8 under wrap", id, got)
		}
	}
}

func TestNeighborSymmetry(t *testing.T) {
	for _, wrap := range []bool{false, true} {
		cfg := Config{Rows: 6, Cols: 7, CellSize: 1, Wrap: wrap}
		adj := NewAdjacency(cfg)
		for a := 0; a < adj.Len(); a++ {
			for _, b := range adj.Neighbors(a) {
				if !slices.Contains(adj.Neighbors(b), a) {
					t.Fatalf("wrap=%v: %d lists %d but not vice versa", wrap, a, b)
				}
			}
		}
	}
}

func TestNoSelfOrDuplicateNeighbors(t *testing.T) {
	// A 2x2 wrapped board is the degenerate case: every Moore offset
	// collides with another or with the cell itself.
	cfg := Config{Rows: 2, Cols: 2, CellSize: 1, Wrap: true}
	adj := NewAdjacency(cfg)
	for id := 0; id < adj.Len(); id++ {
		seen := map[int]bool{}
		for _, n := range adj.Neighbors(id) {
			if n == id {
				t.Fatalf("cell %d lists itself", id)
			}
			if seen[n] {
				t.Fatalf("cell %d lists %d twice", id, n)
			}
			seen[n] = true
		}
		if len(adj.Neighbors(id)) != 3 {
			t.Fatalf("2x2 wrapped cell %d should keep 3 distinct neighbors, got %d", id, len(adj.Neighbors(id)))
		}
	}
}

func TestAdjacencyDeterministic(t *testing.T) {
	cfg := Config{Rows: 8, Cols: 8, CellSize: 1, Wrap: true}
	a := NewAdjacency(cfg)
	b := NewAdjacency(cfg)
	for id := 0; id < a.Len(); id++ {
		if !slices.Equal(a.Neighbors(id), b.Neighbors(id)) {
			t.Fatalf("neighbor order for cell %d differs between builds", id)
		}
	}
}
