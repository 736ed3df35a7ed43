package life

// Adjacency holds, for every cell, the precomputed ids of its Moore
// neighbors. It is built exactly once from a Config and never mutated
// afterwards, so it may be shared freely.
type Adjacency struct {
	rows, cols int
	neighbors  [][]int
}

// Moore offsets in row-major order. The build walks them in this fixed
// order so neighbor lists are stable across runs.
var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewAdjacency computes the neighbor index for the given configuration.
// Non-wrap boards drop out-of-range candidates; wrapped boards reduce them
// modulo the dimensions. A cell never lists itself and never lists the
// same neighbor twice, which only matters for wrapped boards thinner than
// three cells on an axis.
func NewAdjacency(cfg Config) *Adjacency {
	a := &Adjacency{
		rows:      cfg.Rows,
		cols:      cfg.Cols,
		neighbors: make([][]int, cfg.Rows*cfg.Cols),
	}
	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			id := r*cfg.Cols + c
			list := make([]int, 0, 8)
			for _, off := range mooreOffsets {
				nr, nc := r+off[0], c+off[1]
				if cfg.Wrap {
					nr = (nr + cfg.Rows) % cfg.Rows
					nc = (nc + cfg.Cols) % cfg.Cols
				} else if nr < 0 || nr >= cfg.Rows || nc < 0 || nc >= cfg.Cols {
					continue
				}
				nid := nr*cfg.Cols + nc
				if nid == id || contains(list, nid) {
					continue
				}
				list = append(list, nid)
			}
			a.neighbors[id] = list
		}
	}
	return a
}

// Neighbors returns the neighbor ids of the given cell. The returned slice
// is owned by the index and must not be modified.
func (a *Adjacency) Neighbors(id int) []int { return a.neighbors[id] }

// Len returns the number of indexed cells.
func (a *Adjacency) Len() int { return len(a.neighbors) }

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
