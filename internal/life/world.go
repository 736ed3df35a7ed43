package life

// Position is a cell's fixed location in world units, derived from the
// grid layout at setup and never changed afterwards.
type Position struct {
	X float64
	Y float64
}

// Grid owns the board geometry: dimensions, cell size, and the derived
// per-cell positions. Cell ids are row-major ints.
type Grid struct {
	rows, cols int
	cellSize   float64
	positions  []Position
}

// NewGrid derives the geometry from a validated configuration.
func NewGrid(cfg Config) *Grid {
	g := &Grid{
		rows:      cfg.Rows,
		cols:      cfg.Cols,
		cellSize:  cfg.CellSize,
		positions: make([]Position, cfg.Rows*cfg.Cols),
	}
	for id := range g.positions {
		r, c := id/cfg.Cols, id%cfg.Cols
		g.positions[id] = Position{
			X: (float64(c) + 0.5) * cfg.CellSize,
			Y: (float64(r) + 0.5) * cfg.CellSize,
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the edge length of a cell in world units.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Len returns the total cell count.
func (g *Grid) Len() int { return len(g.positions) }

// Index returns the linear cell id for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Coords returns the (row, col) of a cell id.
func (g *Grid) Coords(id int) (int, int) { return id / g.cols, id % g.cols }

// Position returns the cell's center in world units.
func (g *Grid) Position(id int) Position { return g.positions[id] }

// PatternFunc seeds the board: it reports whether the cell at (row, col)
// starts alive.
type PatternFunc func(row, col int) bool

// World groups the three setup products: geometry, the neighbor index,
// and the double-buffered state. All three are created once by Initialize
// and live for the whole run.
type World struct {
	Grid      *Grid
	Adjacency *Adjacency
	State     *State
}

// Initialize validates cfg, builds the grid, adjacency index, and state
// store, and seeds the current buffer from pattern. A nil pattern leaves
// every cell dead. On an invalid config nothing is constructed.
func Initialize(cfg Config, pattern PatternFunc) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		Grid:      NewGrid(cfg),
		Adjacency: NewAdjacency(cfg),
		State:     NewState(cfg.Rows * cfg.Cols),
	}
	if pattern != nil {
		for r := 0; r < cfg.Rows; r++ {
			for c := 0; c < cfg.Cols; c++ {
				if pattern(r, c) {
					w.State.cur[w.Grid.Index(r, c)] = true
				}
			}
		}
	}
	return w, nil
}

// SetAlive writes a cell of the current buffer directly. Intended for
// board editing before the controller starts; during a run all mutation
// goes through the engine and Commit.
func (w *World) SetAlive(row, col int, alive bool) {
	w.State.cur[w.Grid.Index(row, col)] = alive
}

// View returns a read-only window over the current buffer.
func (w *World) View() View {
	return View{grid: w.Grid, cells: w.State.cur}
}

// View is the per-cell {position, alive} surface handed to presentation
// collaborators during render-sync. It reads the pre-commit current
// buffer and exposes nothing mutable.
type View struct {
	grid  *Grid
	cells []bool
}

// Len returns the number of cells in the view.
func (v View) Len() int { return len(v.cells) }

// Alive reports whether the cell is alive in the viewed generation.
func (v View) Alive(id int) bool { return v.cells[id] }

// Position returns the cell's fixed center in world units.
func (v View) Position(id int) Position { return v.grid.Position(id) }

// Rows returns the row count of the viewed grid.
func (v View) Rows() int { return v.grid.rows }

// Cols returns the column count of the viewed grid.
func (v View) Cols() int { return v.grid.cols }
