package life

import (
	"encoding/binary"
	"hash/fnv"
)

// historyDepth is how many recent generation digests are kept for cycle
// detection. Enough to catch still lifes and short oscillators.
const historyDepth = 5

// Stats tracks population over time plus a small digest history used to
// detect extinction and stagnation (static boards or short cycles).
type Stats struct {
	Population        int
	AveragePopulation float64
	recorded          int
	history           []uint64
}

// Record folds one generation into the counters.
func (s *Stats) Record(cells []bool) {
	pop := 0
	for _, alive := range cells {
		if alive {
			pop++
		}
	}
	s.Population = pop
	if s.recorded == 0 {
		s.AveragePopulation = float64(pop)
	} else {
		// Exponential moving average, weighting recent generations.
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(pop)*0.1
	}
	s.recorded++

	s.history = append(s.history, digest(cells))
	if len(s.history) > historyDepth {
		s.history = s.history[1:]
	}
}

// Extinct reports whether the last recorded generation had no live cells.
func (s *Stats) Extinct() bool { return s.recorded > 0 && s.Population == 0 }

// Stagnant reports whether the latest generation repeats one of the few
// generations before it, which catches static boards and short-period
// oscillators.
func (s *Stats) Stagnant() bool {
	n := len(s.history)
	if n < 2 {
		return false
	}
	latest := s.history[n-1]
	for _, h := range s.history[:n-1] {
		if h == latest {
			return true
		}
	}
	return false
}

// digest hashes a generation for equality comparison only.
func digest(cells []bool) uint64 {
	h := fnv.New64a()
	var word [8]byte
	var acc uint64
	bits := 0
	for _, alive := range cells {
		acc <<= 1
		if alive {
			acc |= 1
		}
		bits++
		if bits == 64 {
			binary.BigEndian.PutUint64(word[:], acc)
			h.Write(word[:])
			acc, bits = 0, 0
		}
	}
	if bits > 0 {
		binary.BigEndian.PutUint64(word[:], acc)
		h.Write(word[:])
	}
	return h.Sum64()
}
