package life

// State is the double-buffered cell store: a current and a next boolean
// buffer indexed by cell id. The transition engine only writes next and
// Commit copies it wholesale over current, so every cell of a generation
// is derived from the same snapshot.
type State struct {
	cur []bool
	nxt []bool
}

// NewState allocates buffers for n cells, all dead.
func NewState(n int) *State {
	return &State{cur: make([]bool, n), nxt: make([]bool, n)}
}

// Len returns the number of cells.
func (s *State) Len() int { return len(s.cur) }

// Current reports whether the cell is alive in the current generation.
func (s *State) Current(id int) bool { return s.cur[id] }

// SetNext stages the cell's state for the next generation.
func (s *State) SetNext(id int, alive bool) { s.nxt[id] = alive }

// Commit copies the staged generation over the current one. Cell order is
// irrelevant here since no cross-cell read happens during the copy.
func (s *State) Commit() { copy(s.cur, s.nxt) }

// Cells exposes the current buffer for presentation. Callers must treat it
// as read-only.
func (s *State) Cells() []bool { return s.cur }
