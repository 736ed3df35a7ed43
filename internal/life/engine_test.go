package life

import (
	"slices"
	"testing"
)

func TestNextAliveRule(t *testing.T) {
	cases := []struct {
		alive     bool
		neighbors int
		want      bool
	}{
		{true, 0, false},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{true, 8, false},
		{false, 2, false},
		{false, 3, true},
		{false, 4, false},
		{false, 0, false},
	}
	for _, tc := range cases {
		if got := NextAlive(tc.alive, tc.neighbors); got != tc.want {
			t.Fatalf("alive=%v neighbors=%d: got %v, want %v", tc.alive, tc.neighbors, got, tc.want)
		}
	}
}

// worldWithCells builds a non-wrapped board seeded with the given cells.
func worldWithCells(t *testing.T, rows, cols int, alive [][2]int) *World {
	t.Helper()
	w, err := Initialize(Config{Rows: rows, Cols: cols, CellSize: 1}, nil)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for _, rc := range alive {
		w.SetAlive(rc[0], rc[1], true)
	}
	return w
}

func aliveSet(w *World) map[[2]int]bool {
	set := map[[2]int]bool{}
	for id := 0; id < w.State.Len(); id++ {
		if w.State.Current(id) {
			r, c := w.Grid.Coords(id)
			set[[2]int{r, c}] = true
		}
	}
	return set
}

func expectAlive(t *testing.T, w *World, want [][2]int) {
	t.Helper()
	got := aliveSet(w)
	if len(got) != len(want) {
		t.Fatalf("expected %d live cells, got %d (%v)", len(want), len(got), got)
	}
	for _, rc := range want {
		if !got[rc] {
			t.Fatalf("expected cell (%d,%d) alive, live set: %v", rc[0], rc[1], got)
		}
	}
}

func TestStepIsPure(t *testing.T) {
	w := worldWithCells(t, 5, 5, [][2]int{{1, 2}, {2, 2}, {3, 2}})
	before := append([]bool(nil), w.State.Cells()...)

	Step(w.Adjacency, w.State)
	first := append([]bool(nil), w.State.nxt...)

	Step(w.Adjacency, w.State)
	second := append([]bool(nil), w.State.nxt...)

	if !slices.Equal(first, second) {
		t.Fatal("two steps over the same snapshot must stage identical results")
	}
	if !slices.Equal(before, w.State.Cells()) {
		t.Fatal("Step must never mutate the current buffer")
	}
}

func TestBlockStillLife(t *testing.T) {
	w := worldWithCells(t, 6, 6, [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}})
	Step(w.Adjacency, w.State)
	w.State.Commit()
	expectAlive(t, w, [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}})
}

func TestBirthRule(t *testing.T) {
	// Dead center cell with exactly 3 live neighbors is born.
	w := worldWithCells(t, 5, 5, [][2]int{{1, 1}, {1, 3}, {3, 2}})
	Step(w.Adjacency, w.State)
	if !w.State.nxt[w.Grid.Index(2, 2)] {
		t.Fatal("dead cell with 3 live neighbors must be born")
	}

	// With 2 neighbors it stays dead.
	w = worldWithCells(t, 5, 5, [][2]int{{1, 1}, {1, 3}})
	Step(w.Adjacency, w.State)
	if w.State.nxt[w.Grid.Index(2, 2)] {
		t.Fatal("dead cell with 2 live neighbors must stay dead")
	}

	// With 4 neighbors it stays dead.
	w = worldWithCells(t, 5, 5, [][2]int{{1, 1}, {1, 3}, {3, 1}, {3, 3}})
	Step(w.Adjacency, w.State)
	if w.State.nxt[w.Grid.Index(2, 2)] {
		t.Fatal("dead cell with 4 live neighbors must stay dead")
	}
}

func TestDeathRule(t *testing.T) {
	// Lone live cell dies of isolation.
	w := worldWithCells(t, 5, 5, [][2]int{{2, 2}})
	Step(w.Adjacency, w.State)
	if w.State.nxt[w.Grid.Index(2, 2)] {
		t.Fatal("isolated live cell must die")
	}

	// One neighbor is still isolation.
	w = worldWithCells(t, 5, 5, [][2]int{{2, 2}, {2, 3}})
	Step(w.Adjacency, w.State)
	if w.State.nxt[w.Grid.Index(2, 2)] {
		t.Fatal("live cell with 1 neighbor must die")
	}

	// Four or more neighbors is overcrowding.
	w = worldWithCells(t, 5, 5, [][2]int{{2, 2}, {1, 1}, {1, 3}, {3, 1}, {3, 3}})
	Step(w.Adjacency, w.State)
	if w.State.nxt[w.Grid.Index(2, 2)] {
		t.Fatal("live cell with 4 neighbors must die")
	}
}

func TestWrapChangesEdgeOutcome(t *testing.T) {
	// Three live cells in the top row's corner region: without wrap the
	// column neighbors differ from the toroidal board, so the next
	// generation diverges.
	seed := [][2]int{{0, 0}, {0, 1}, {0, 2}}

	plain := worldWithCells(t, 4, 4, seed)
	Step(plain.Adjacency, plain.State)
	plain.State.Commit()

	wrapped, err := Initialize(Config{Rows: 4, Cols: 4, CellSize: 1, Wrap: true}, nil)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for _, rc := range seed {
		wrapped.SetAlive(rc[0], rc[1], true)
	}
	Step(wrapped.Adjacency, wrapped.State)
	wrapped.State.Commit()

	// On the open board the row above does not exist; cell (3,1) has no
	// reason to be born. On the torus it borders the seed row and gets
	// exactly three live neighbors.
	if plain.State.Current(plain.Grid.Index(3, 1)) {
		t.Fatal("non-wrapped board must not grow across the edge")
	}
	if !wrapped.State.Current(wrapped.Grid.Index(3, 1)) {
		t.Fatal("wrapped board must grow across the edge")
	}
}
