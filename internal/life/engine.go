package life

// NextAlive applies Conway's rule to a single cell: a live cell survives
// with two or three live neighbors, a dead cell is born with exactly
// three, everything else dies or stays dead.
func NextAlive(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

// Step fills the next buffer from the current snapshot. Every cell's next
// value depends only on current values, never on another cell's staged
// next value or on iteration order.
func Step(adj *Adjacency, st *State) {
	for id := 0; id < st.Len(); id++ {
		live := 0
		for _, n := range adj.Neighbors(id) {
			if st.Current(n) {
				live++
			}
		}
		st.SetNext(id, NextAlive(st.Current(id), live))
	}
}
